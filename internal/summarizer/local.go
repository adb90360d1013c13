package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fachebot/chat-digest-bot/internal/llm"
	"github.com/fachebot/chat-digest-bot/internal/logger"
)

// reduceSystemPrompt 层级归并阶段的指令：把分块摘要合并为一份总结
const reduceSystemPrompt = `你是一个专业的群聊总结助手。用户会提供同一场群聊多个片段各自的总结，请把它们合并为一份连贯的中文总结，按要点列出主要话题和结论，控制在 300 字以内。只输出总结正文，不要其他内容。`

// LocalModelBackend 本地模型摘要后端，通过本地推理服务的 OpenAI 兼容端点做生成式摘要
// 输入超过模型上下文预算时逐块摘要，再对分块摘要做一次归并
type LocalModelBackend struct {
	client  *llm.Client
	enabled bool
}

// NewLocalModelBackend enabled 表示本地推理端点已配置
func NewLocalModelBackend(client *llm.Client, enabled bool) *LocalModelBackend {
	return &LocalModelBackend{client: client, enabled: enabled}
}

func (b *LocalModelBackend) Name() string {
	return BackendLocalModel
}

func (b *LocalModelBackend) Available() bool {
	return b.enabled && b.client != nil
}

func (b *LocalModelBackend) Summarize(ctx context.Context, segments []ConversationSegment) (string, error) {
	if !b.Available() {
		return "", ErrModelUnavailable
	}

	lines := transcriptLines(segments)
	if len(lines) == 0 {
		return "", ErrEmptyInput
	}

	text := strings.Join(lines, "\n")
	if llm.EstimateTokens(text) <= b.client.MaxInputTokens() {
		return b.complete(ctx, digestSystemPrompt, "群聊记录：\n"+text)
	}

	// 超出上下文预算：拆分为多个 chunk 逐块总结，再归并
	chunks := splitLinesIntoChunks(lines, b.client.MaxInputTokens())
	logger.Infof("[Summarizer] 本地模型输入过长，拆分为 %d 个 chunk", len(chunks))

	chunkSummaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		logger.Debugf("[Summarizer] 本地模型处理 chunk %d/%d", i+1, len(chunks))
		part, err := b.complete(ctx, digestSystemPrompt, "群聊记录片段：\n"+strings.Join(chunk, "\n"))
		if err != nil {
			return "", fmt.Errorf("总结 chunk %d 失败: %w", i+1, err)
		}
		chunkSummaries = append(chunkSummaries, part)
	}

	if len(chunkSummaries) == 1 {
		return chunkSummaries[0], nil
	}
	return b.complete(ctx, reduceSystemPrompt, "各片段总结：\n"+strings.Join(chunkSummaries, "\n\n"))
}

// complete 调用本地端点并把失败归类为推理错误
func (b *LocalModelBackend) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, err := b.client.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		if errors.Is(err, llm.ErrAuth) {
			return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		return "", fmt.Errorf("%w: %v", ErrInference, err)
	}
	if text == "" {
		return "", fmt.Errorf("%w: 返回内容为空", ErrInference)
	}
	return text, nil
}

// splitLinesIntoChunks 将文本行按 token 估算拆分为多个 chunk
func splitLinesIntoChunks(lines []string, maxTokensPerChunk int) [][]string {
	if len(lines) == 0 {
		return nil
	}
	chunks := make([][]string, 0)
	current := make([]string, 0)
	currentTokens := 0

	for _, line := range lines {
		tokens := llm.EstimateTokens(line)
		if currentTokens+tokens > maxTokensPerChunk && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			currentTokens = 0
		}
		current = append(current, line)
		currentTokens += tokens
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
