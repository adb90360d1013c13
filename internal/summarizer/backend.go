package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// Backend 摘要后端：一种将会话段集合压缩为摘要文本的策略
// Summarize 不做内部重试，只读入参；重试和降级策略属于后端链
type Backend interface {
	Name() string
	// Available 后端是否可用（凭证缺失、模型未加载等情况下返回 false，不会被调用）
	Available() bool
	Summarize(ctx context.Context, segments []ConversationSegment) (string, error)
}

// transcriptLines 将会话段展开为带发送者标注的文本行，格式为 "[发送者名|sender_id] 消息内容"
// 跳过命令消息；会话段之间插入分隔行
func transcriptLines(segments []ConversationSegment) []string {
	lines := make([]string, 0)
	for i, seg := range segments {
		if i > 0 {
			lines = append(lines, "---")
		}
		for _, m := range seg.Messages {
			text := strings.TrimSpace(m.Text)
			if text == "" || strings.HasPrefix(text, "/") {
				continue
			}
			lines = append(lines, fmt.Sprintf("[%s|%d] %s", m.SenderName, m.SenderID, text))
		}
	}
	return lines
}
