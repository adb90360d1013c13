package summarizer

import (
	"context"

	"github.com/fachebot/chat-digest-bot/internal/logger"
)

// BackendChain 后端降级链：按固定优先级依次尝试各后端
// 单个后端的失败只记录日志不上抛；全部耗尽时返回 ErrNoBackendAvailable
// 尝试顺序对相同配置保持确定且稳定
type BackendChain struct {
	backends []Backend
}

func NewBackendChain(backends ...Backend) *BackendChain {
	return &BackendChain{backends: backends}
}

// Run 依次尝试各后端，返回首个成功后端的摘要文本和后端名称
func (c *BackendChain) Run(ctx context.Context, segments []ConversationSegment) (string, string, error) {
	for _, backend := range c.backends {
		if !backend.Available() {
			logger.Debugf("[BackendChain] 后端 %s 不可用，跳过", backend.Name())
			continue
		}

		text, err := backend.Summarize(ctx, segments)
		if err != nil {
			logger.Warnf("[BackendChain] 后端 %s 失败: %v", backend.Name(), err)
			continue
		}
		if text == "" {
			logger.Warnf("[BackendChain] 后端 %s 返回空摘要，跳过", backend.Name())
			continue
		}

		logger.Infof("[BackendChain] 后端 %s 生成摘要成功", backend.Name())
		return text, backend.Name(), nil
	}

	return "", "", ErrNoBackendAvailable
}
