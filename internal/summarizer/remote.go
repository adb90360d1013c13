package summarizer

import (
	"context"
	"strings"

	"github.com/fachebot/chat-digest-bot/internal/llm"
	"github.com/fachebot/chat-digest-bot/internal/logger"
)

// digestSystemPrompt 摘要指令，远程和本地后端共用
const digestSystemPrompt = `你是一个专业的群聊总结助手。根据用户提供的群聊记录（每行格式为 [发送者名|ID] 消息内容，"---" 表示不同会话之间的分隔），写一份简洁的中文总结：
1. 按要点列出主要讨论的话题和结论
2. 提到关键发言人时使用其名字
3. 控制在 300 字以内

只输出总结正文，不要其他内容。`

// RemoteLLMBackend 远程 LLM 摘要后端，调用兼容 OpenAI API 的补全端点
type RemoteLLMBackend struct {
	client  *llm.Client
	enabled bool
}

// NewRemoteLLMBackend enabled 表示凭证已配置（API Key 存在）
func NewRemoteLLMBackend(client *llm.Client, enabled bool) *RemoteLLMBackend {
	return &RemoteLLMBackend{client: client, enabled: enabled}
}

func (b *RemoteLLMBackend) Name() string {
	return BackendRemoteLLM
}

func (b *RemoteLLMBackend) Available() bool {
	return b.enabled && b.client != nil
}

func (b *RemoteLLMBackend) Summarize(ctx context.Context, segments []ConversationSegment) (string, error) {
	lines := transcriptLines(segments)
	if len(lines) == 0 {
		return "", ErrEmptyInput
	}

	// 超出 token 预算时只保留最近的消息
	lines = trimToTokenBudget(lines, b.client.MaxInputTokens())

	text, err := b.client.Complete(ctx, digestSystemPrompt, "群聊记录：\n"+strings.Join(lines, "\n"))
	if err != nil {
		return "", err
	}
	return text, nil
}

// trimToTokenBudget 从尾部保留尽量多的文本行，使 token 估算不超过预算
func trimToTokenBudget(lines []string, maxTokens int) []string {
	total := 0
	start := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		tokens := llm.EstimateTokens(lines[i])
		if total+tokens > maxTokens && start < len(lines) {
			break
		}
		total += tokens
		start = i
	}
	if start > 0 {
		logger.Infof("[Summarizer] 群聊记录过长，截取最近 %d/%d 行", len(lines)-start, len(lines))
	}
	return lines[start:]
}
