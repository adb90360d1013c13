package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// 调用失败分类，由后端链按类别记录日志后降级
var (
	ErrAuth      = errors.New("认证失败")
	ErrRateLimit = errors.New("请求频率受限")
	ErrTimeout   = errors.New("请求超时")
	ErrUpstream  = errors.New("上游服务错误")
)

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config 客户端参数，远程 API 和本地推理端点共用同一客户端
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int           // 模型上下文窗口大小
	Timeout   time.Duration // 单次请求超时
	Transport http.RoundTripper
}

type Client struct {
	model          string
	timeout        time.Duration
	openaiClient   openAIClientInterface
	maxInputTokens int
}

func NewClient(cfg Config) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if cfg.Transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: cfg.Transport}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	client := &Client{
		model:          cfg.Model,
		timeout:        timeout,
		openaiClient:   openai.NewClientWithConfig(openaiConfig),
		maxInputTokens: cfg.MaxTokens - 2000, // 预留 2000 tokens 给 system prompt 和输出
	}

	return client
}

// MaxInputTokens 输入内容的 token 预算
func (c *Client) MaxInputTokens() int {
	return c.maxInputTokens
}

// EstimateTokens 估算文本的 token 数量
func EstimateTokens(text string) int {
	// 简单估算：中文约 1.5 token/字，英文约 1.3 token/词
	chineseChars := 0
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			chineseChars++
		}
	}

	// 英文词数估算（简单按空格分割）
	englishWords := len(strings.Fields(text))

	tokens := int(float64(chineseChars)*1.5 + float64(englishWords)*1.3)
	if tokens < len(text)/4 {
		// 如果估算值太小，使用字符数的 1/4 作为下限
		tokens = len(text) / 4
	}

	return tokens
}

// Complete 执行一次补全请求并返回清理后的文本
// 失败时返回 ErrAuth/ErrRateLimit/ErrTimeout/ErrUpstream 之一的包装错误
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: API 返回空结果", ErrUpstream)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```markdown")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content), nil
}

// classifyError 将 API 错误归类到固定的失败类别
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		default:
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
