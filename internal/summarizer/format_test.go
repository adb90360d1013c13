package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDigestForDisplay_Produced(t *testing.T) {
	result := &SummaryResult{
		Status:           StatusProduced,
		Text:             "• 张三: 今天发布了新版本",
		Backend:          BackendExtractive,
		GeneratedAt:      time.Now().UTC(),
		SegmentCount:     2,
		ParticipantCount: 3,
	}

	content := FormatDigestForDisplay(result, "技术交流群", "2025-03-01", "2025-03-02")
	assert.Contains(t, content, "<b>群聊总结</b>")
	assert.Contains(t, content, "技术交流群")
	assert.Contains(t, content, "2025-03-01 至 2025-03-02")
	assert.Contains(t, content, "2 段会话，3 位参与者")
	assert.Contains(t, content, "今天发布了新版本")
}

func TestFormatDigestForDisplay_InsufficientActivity(t *testing.T) {
	result := &SummaryResult{
		Status:      StatusInsufficientActivity,
		GeneratedAt: time.Now().UTC(),
	}

	content := FormatDigestForDisplay(result, "技术交流群", "2025-03-01", "2025-03-02")
	assert.Contains(t, content, "消息较少")
	assert.NotContains(t, content, "段会话")
}

func TestFormatDigestForDisplay_Failed(t *testing.T) {
	result := &SummaryResult{
		Status:      StatusFailed,
		Text:        FallbackText,
		GeneratedAt: time.Now().UTC(),
	}

	content := FormatDigestForDisplay(result, "技术交流群", "2025-03-01", "2025-03-02")
	assert.Contains(t, content, FallbackText)
	assert.NotContains(t, content, "段会话")
}

func TestFormatDigestForDisplay_EscapesHTML(t *testing.T) {
	result := &SummaryResult{
		Status:           StatusProduced,
		Text:             "• 张三: a < b && b > c",
		SegmentCount:     1,
		ParticipantCount: 1,
	}

	content := FormatDigestForDisplay(result, "A&B<测试>群", "2025-03-01", "2025-03-02")
	assert.Contains(t, content, "A&amp;B&lt;测试&gt;群")
	assert.Contains(t, content, "a &lt; b &amp;&amp; b &gt; c")
	assert.NotContains(t, content, "<测试>")
}

func TestFormatDigestForDisplay_Nil(t *testing.T) {
	assert.Empty(t, FormatDigestForDisplay(nil, "群", "2025-03-01", "2025-03-02"))
}

func TestTranscriptLines(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	segments := []ConversationSegment{
		{
			Messages: []Message{
				mustMessage(1, "张三", "上午的话题", base),
				mustMessage(2, "李四", "/digest", base.Add(time.Minute)),
				mustMessage(2, "李四", "  ", base.Add(2*time.Minute)),
			},
		},
		{
			Messages: []Message{
				mustMessage(3, "王五", "下午继续聊", base.Add(time.Hour)),
			},
		},
	}

	lines := transcriptLines(segments)
	assert.Equal(t, []string{
		"[张三|1] 上午的话题",
		"---",
		"[王五|3] 下午继续聊",
	}, lines)
}
