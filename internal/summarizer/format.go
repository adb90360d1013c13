package summarizer

import (
	"fmt"
	"strings"
)

// escapeHTML 对文本进行 HTML 转义，防止注入及破坏标签
// 转义：& < > "
func escapeHTML(text string) string {
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")
	result = strings.ReplaceAll(result, "\"", "&quot;")
	return result
}

// FormatDigestForDisplay 将 SummaryResult 格式化为 Telegram HTML 文本
// 使用 Telegram HTML 语法：<b>粗体</b>
func FormatDigestForDisplay(result *SummaryResult, chatTitle, startDate, endDate string) string {
	if result == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("📝 <b>群聊总结</b>")
	if chatTitle != "" {
		sb.WriteString(fmt.Sprintf(" - %s", escapeHTML(chatTitle)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("📅 %s 至 %s (UTC)\n", escapeHTML(startDate), escapeHTML(endDate)))

	switch result.Status {
	case StatusInsufficientActivity:
		sb.WriteString("\n区间内消息较少，未生成总结。")
	case StatusFailed:
		sb.WriteString("\n")
		sb.WriteString(escapeHTML(result.Text))
	default:
		sb.WriteString(fmt.Sprintf("💬 %d 段会话，%d 位参与者\n\n", result.SegmentCount, result.ParticipantCount))
		sb.WriteString(escapeHTML(result.Text))
	}

	return sb.String()
}
