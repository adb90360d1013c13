package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOpenAIClient 测试用 OpenAI 客户端
type mockOpenAIClient struct {
	response openai.ChatCompletionResponse
	err      error
	lastReq  openai.ChatCompletionRequest
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastReq = req
	return m.response, m.err
}

func newTestClient(mock *mockOpenAIClient) *Client {
	return &Client{
		model:          "test-model",
		timeout:        time.Minute,
		openaiClient:   mock,
		maxInputTokens: 14000,
	}
}

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestClient_Complete(t *testing.T) {
	mock := &mockOpenAIClient{response: completionResponse("这是摘要内容")}
	client := newTestClient(mock)

	content, err := client.Complete(context.Background(), "系统提示", "用户内容")
	require.NoError(t, err)
	assert.Equal(t, "这是摘要内容", content)

	require.Len(t, mock.lastReq.Messages, 2)
	assert.Equal(t, "test-model", mock.lastReq.Model)
	assert.Equal(t, openai.ChatMessageRoleSystem, mock.lastReq.Messages[0].Role)
	assert.Equal(t, "系统提示", mock.lastReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, mock.lastReq.Messages[1].Role)
}

func TestClient_CompleteStripsCodeFence(t *testing.T) {
	mock := &mockOpenAIClient{response: completionResponse("```markdown\n摘要正文\n```")}
	client := newTestClient(mock)

	content, err := client.Complete(context.Background(), "系统提示", "用户内容")
	require.NoError(t, err)
	assert.Equal(t, "摘要正文", content)
}

func TestClient_CompleteEmptyChoices(t *testing.T) {
	mock := &mockOpenAIClient{response: openai.ChatCompletionResponse{}}
	client := newTestClient(mock)

	_, err := client.Complete(context.Background(), "系统提示", "用户内容")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "认证失败",
			err:      &openai.APIError{HTTPStatusCode: http.StatusUnauthorized},
			expected: ErrAuth,
		},
		{
			name:     "无权限",
			err:      &openai.APIError{HTTPStatusCode: http.StatusForbidden},
			expected: ErrAuth,
		},
		{
			name:     "频率受限",
			err:      &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests},
			expected: ErrRateLimit,
		},
		{
			name:     "服务端错误",
			err:      &openai.APIError{HTTPStatusCode: http.StatusInternalServerError},
			expected: ErrUpstream,
		},
		{
			name:     "请求超时",
			err:      context.DeadlineExceeded,
			expected: ErrTimeout,
		},
		{
			name:     "未知错误",
			err:      errors.New("connection refused"),
			expected: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyError(tt.err), tt.expected)
		})
	}
}

func TestClient_CompleteClassifiesError(t *testing.T) {
	mock := &mockOpenAIClient{err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}}
	client := newTestClient(mock)

	_, err := client.Complete(context.Background(), "系统提示", "用户内容")
	assert.ErrorIs(t, err, ErrRateLimit)
}

func TestNewClient(t *testing.T) {
	client := NewClient(Config{
		BaseURL:   "https://api.example.com/v1",
		APIKey:    "test-key",
		Model:     "gpt-4o-mini",
		MaxTokens: 16000,
	})

	require.NotNil(t, client)
	assert.Equal(t, 14000, client.MaxInputTokens())
	assert.Equal(t, 2*time.Minute, client.timeout)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))

	// 中文按约 1.5 token/字估算
	tokens := EstimateTokens("今天天气不错")
	assert.Equal(t, 10, tokens)

	// 英文按约 1.3 token/词估算，但不低于字符数的 1/4
	tokens = EstimateTokens("hello world")
	assert.GreaterOrEqual(t, tokens, 2)

	// 混合文本
	assert.Greater(t, EstimateTokens("今天 deploy 了新版本"), 0)
}
