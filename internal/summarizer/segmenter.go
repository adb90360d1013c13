package summarizer

import (
	"fmt"
	"time"
)

// SegmentMessages 将按时间非降序排列的消息切分为会话段
// 相邻消息间隔超过 gapThreshold 时开启新段；总消息数低于 minMessages 时返回空序列
// 切分只依赖时间间隔，不做话题漂移检测
//
// 保证：各段互不重叠、按原顺序完整覆盖输入、每段非空
func SegmentMessages(msgs []Message, gapThreshold time.Duration, minMessages int) ([]ConversationSegment, error) {
	if gapThreshold <= 0 {
		gapThreshold = DefaultGapThreshold
	}
	if minMessages <= 0 {
		minMessages = DefaultMinMessages
	}

	// 前置条件：时间非降序
	for i := 1; i < len(msgs); i++ {
		if msgs[i].SentAt.Before(msgs[i-1].SentAt) {
			return nil, fmt.Errorf("%w: 第 %d 条消息早于前一条", ErrInvalidInput, i)
		}
	}

	if len(msgs) < minMessages {
		return nil, nil
	}

	segments := make([]ConversationSegment, 0)
	start := 0
	for i := 1; i <= len(msgs); i++ {
		if i < len(msgs) && msgs[i].SentAt.Sub(msgs[i-1].SentAt) <= gapThreshold {
			continue
		}
		segments = append(segments, newSegment(msgs[start:i]))
		start = i
	}

	return segments, nil
}

// newSegment 由非空消息切片构造会话段，提取参与者集合和起止时间
func newSegment(msgs []Message) ConversationSegment {
	seen := make(map[int64]bool, len(msgs))
	participants := make([]int64, 0, len(msgs))
	for _, m := range msgs {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			participants = append(participants, m.SenderID)
		}
	}

	return ConversationSegment{
		Messages:     msgs,
		Participants: participants,
		StartAt:      msgs[0].SentAt,
		EndAt:        msgs[len(msgs)-1].SentAt,
	}
}

// countParticipants 统计多个会话段的去重参与者数量
func countParticipants(segments []ConversationSegment) int {
	seen := make(map[int64]bool)
	for _, seg := range segments {
		for _, id := range seg.Participants {
			seen[id] = true
		}
	}
	return len(seen)
}
