package summarizer

import "time"

// 默认引擎参数
const (
	DefaultMinMessages  = 3                // 最小消息数阈值
	DefaultGapThreshold = 10 * time.Minute // 会话切分的时间间隔阈值
)

// FallbackText 全部后端失败时的占位摘要文本
const FallbackText = "暂时无法生成群聊总结，请稍后重试。"

// 后端名称
const (
	BackendRemoteLLM  = "remote_llm"
	BackendLocalModel = "local_model"
	BackendExtractive = "extractive"
)

// Message 群聊单条消息，引擎内部的只读表示
type Message struct {
	ID         int64
	ChatID     int64
	SenderID   int64
	SenderName string
	Text       string
	SentAt     time.Time
}

// ConversationSegment 会话段：被判定为同一轮对话的连续消息
// 由切分步骤创建，下游只读
type ConversationSegment struct {
	Messages     []Message
	Participants []int64 // 去重后的发送者ID，按首次发言顺序
	StartAt      time.Time
	EndAt        time.Time
}

// SummaryRequest 单次摘要请求，时间区间为 [StartTime, EndTime)
// MinMessages/GapThreshold 为零时使用引擎默认值
type SummaryRequest struct {
	ChatID       int64
	StartTime    time.Time
	EndTime      time.Time
	MinMessages  int
	GapThreshold time.Duration
}

// Status 摘要结果状态
type Status string

const (
	StatusProduced             Status = "produced"              // 已生成摘要
	StatusInsufficientActivity Status = "insufficient_activity" // 消息数低于阈值
	StatusFailed               Status = "failed"                // 全部后端失败
)

// SummaryResult 摘要结果
// StatusProduced 时 Text 非空；StatusInsufficientActivity 时不带后端归属
type SummaryResult struct {
	Status           Status
	Text             string
	Backend          string
	GeneratedAt      time.Time
	SegmentCount     int
	ParticipantCount int
}
