package summarizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMessage(senderID int64, senderName, text string, sentAt time.Time) Message {
	return Message{
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		SentAt:     sentAt,
	}
}

func TestSegmentMessages_UnorderedInput(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "第一条", base),
		mustMessage(2, "李四", "第二条", base.Add(-time.Minute)),
		mustMessage(3, "王五", "第三条", base.Add(time.Minute)),
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, segments)
}

func TestSegmentMessages_BelowThreshold(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "只有两条", base),
		mustMessage(2, "李四", "不够总结", base.Add(time.Minute)),
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	assert.NoError(t, err)
	assert.Empty(t, segments)
}

func TestSegmentMessages_SingleSegment(t *testing.T) {
	// 5 条消息、3 位发送者、全部在 2 分钟内，间隔阈值 10 分钟 => 恰好 1 段、3 位参与者
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "大家好", base),
		mustMessage(2, "李四", "你好", base.Add(20*time.Second)),
		mustMessage(3, "王五", "早上好", base.Add(40*time.Second)),
		mustMessage(1, "张三", "今天讨论一下进度", base.Add(70*time.Second)),
		mustMessage(2, "李四", "没问题", base.Add(110*time.Second)),
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Messages, 5)
	assert.Len(t, segments[0].Participants, 3)
	assert.Equal(t, base, segments[0].StartAt)
	assert.Equal(t, base.Add(110*time.Second), segments[0].EndAt)
}

func TestSegmentMessages_SplitOnGap(t *testing.T) {
	// 中间有 30 分钟空档，间隔阈值 10 分钟 => 恰好在空档处切成 2 段
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "上午的话题", base),
		mustMessage(2, "李四", "我有个想法", base.Add(time.Minute)),
		mustMessage(1, "张三", "说说看", base.Add(2*time.Minute)),
		mustMessage(3, "王五", "下午继续聊", base.Add(32*time.Minute)),
		mustMessage(2, "李四", "好啊", base.Add(33*time.Minute)),
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Len(t, segments[0].Messages, 3)
	assert.Len(t, segments[1].Messages, 2)
}

func TestSegmentMessages_CoversInputInOrder(t *testing.T) {
	// 不重叠、按原顺序完整覆盖输入、每段非空
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	msgs := make([]Message, 0, 12)
	for i := 0; i < 12; i++ {
		gap := time.Duration(i) * 7 * time.Minute // 间隔 0,7,14,... 分钟，部分超过阈值
		base = base.Add(gap)
		msgs = append(msgs, mustMessage(int64(i%4), "成员", "消息内容", base))
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	require.NoError(t, err)
	require.NotEmpty(t, segments)

	flattened := make([]Message, 0, len(msgs))
	for _, seg := range segments {
		require.NotEmpty(t, seg.Messages)
		flattened = append(flattened, seg.Messages...)
	}
	require.Len(t, flattened, len(msgs))
	for i := range msgs {
		assert.Equal(t, msgs[i].SentAt, flattened[i].SentAt)
		assert.Equal(t, msgs[i].SenderID, flattened[i].SenderID)
	}
}

func TestSegmentMessages_EqualTimestamps(t *testing.T) {
	// 相同时间戳视为非降序，不应报错
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "同一秒", base),
		mustMessage(2, "李四", "同一秒", base),
		mustMessage(3, "王五", "同一秒", base),
	}

	segments, err := SegmentMessages(msgs, 10*time.Minute, 3)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Participants, 3)
}
