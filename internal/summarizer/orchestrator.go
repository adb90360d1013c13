package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/config"
	"github.com/fachebot/chat-digest-bot/internal/ent"
	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/fachebot/chat-digest-bot/internal/model"
)

// messageSource 获取时间区间内的消息（便于测试注入 mock）
type messageSource interface {
	GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error)
}

// Orchestrator 摘要流程的入口：取消息、切分会话、驱动后端链、组装结果
// 单次调用内无共享可变状态，不同群聊的请求可并发执行
type Orchestrator struct {
	source       messageSource
	chain        *BackendChain
	minMessages  int
	gapThreshold time.Duration
}

func NewOrchestrator(source *model.MessageModel, chain *BackendChain, engineCfg *config.Engine) *Orchestrator {
	minMessages := engineCfg.MinMessages
	if minMessages <= 0 {
		minMessages = DefaultMinMessages
	}
	gapThreshold := time.Duration(engineCfg.GapMinutes) * time.Minute
	if gapThreshold <= 0 {
		gapThreshold = DefaultGapThreshold
	}

	return &Orchestrator{
		source:       source,
		chain:        chain,
		minMessages:  minMessages,
		gapThreshold: gapThreshold,
	}
}

// ProduceSummary 生成指定群聊、指定时间区间的摘要
// 仅消息源失败返回非 nil 错误；后端链耗尽返回 StatusFailed 结果，消息不足返回
// StatusInsufficientActivity 结果，调用方总能拿到完整的 SummaryResult
func (o *Orchestrator) ProduceSummary(ctx context.Context, req SummaryRequest) (*SummaryResult, error) {
	startStr := req.StartTime.Format("2006-01-02 15:04")
	endStr := req.EndTime.Format("2006-01-02 15:04")
	logger.Infof("[Orchestrator] 开始生成群聊 %d 在 %s ~ %s 的摘要", req.ChatID, startStr, endStr)

	entMsgs, err := o.source.GetByRangeAndChat(ctx, req.ChatID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("获取消息失败: %w", err)
	}

	msgs := make([]Message, len(entMsgs))
	for i, m := range entMsgs {
		msgs[i] = Message{
			ID:         m.MessageID,
			ChatID:     m.ChatID,
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			Text:       m.Text,
			SentAt:     m.SentAt.UTC(),
		}
	}

	minMessages := req.MinMessages
	if minMessages <= 0 {
		minMessages = o.minMessages
	}
	gapThreshold := req.GapThreshold
	if gapThreshold <= 0 {
		gapThreshold = o.gapThreshold
	}

	// 消息不足：不做切分也不调用任何后端
	if len(msgs) < minMessages {
		logger.Infof("[Orchestrator] 群聊 %d 消息数 %d 低于阈值 %d，跳过摘要", req.ChatID, len(msgs), minMessages)
		return &SummaryResult{
			Status:      StatusInsufficientActivity,
			GeneratedAt: time.Now().UTC(),
		}, nil
	}

	segments, err := SegmentMessages(msgs, gapThreshold, minMessages)
	if err != nil {
		// 前置条件被破坏属于编程错误，记录后作为请求级失败上抛
		logger.Errorf("[Orchestrator] 群聊 %d 会话切分失败: %v", req.ChatID, err)
		return nil, fmt.Errorf("会话切分失败: %w", err)
	}
	if len(segments) == 0 {
		return &SummaryResult{
			Status:      StatusInsufficientActivity,
			GeneratedAt: time.Now().UTC(),
		}, nil
	}

	segmentCount := len(segments)
	participantCount := countParticipants(segments)
	logger.Infof("[Orchestrator] 群聊 %d 切分为 %d 段会话，%d 位参与者", req.ChatID, segmentCount, participantCount)

	text, backend, err := o.chain.Run(ctx, segments)
	if err != nil {
		// 全部后端耗尽不是调用方错误，降级为占位文本
		logger.Errorf("[Orchestrator] 群聊 %d 所有后端均失败: %v", req.ChatID, err)
		return &SummaryResult{
			Status:           StatusFailed,
			Text:             FallbackText,
			GeneratedAt:      time.Now().UTC(),
			SegmentCount:     segmentCount,
			ParticipantCount: participantCount,
		}, nil
	}

	return &SummaryResult{
		Status:           StatusProduced,
		Text:             text,
		Backend:          backend,
		GeneratedAt:      time.Now().UTC(),
		SegmentCount:     segmentCount,
		ParticipantCount: participantCount,
	}, nil
}
