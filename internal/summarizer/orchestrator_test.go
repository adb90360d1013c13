package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/ent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMessageSource 测试用消息源
type mockMessageSource struct {
	messages []*ent.Message
	err      error
}

func (m *mockMessageSource) GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

func entMessage(id int64, senderID int64, senderName, text string, sentAt time.Time) *ent.Message {
	return &ent.Message{
		MessageID:  id,
		ChatID:     -100,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		SentAt:     sentAt,
	}
}

func newTestOrchestrator(source messageSource, chain *BackendChain) *Orchestrator {
	return &Orchestrator{
		source:       source,
		chain:        chain,
		minMessages:  DefaultMinMessages,
		gapThreshold: DefaultGapThreshold,
	}
}

func testRequest() SummaryRequest {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return SummaryRequest{
		ChatID:    -100,
		StartTime: base,
		EndTime:   base.Add(24 * time.Hour),
	}
}

func TestOrchestrator_Produced(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &mockMessageSource{
		messages: []*ent.Message{
			entMessage(1, 1, "张三", "大家好", base),
			entMessage(2, 2, "李四", "今天讨论发布计划", base.Add(20*time.Second)),
			entMessage(3, 3, "王五", "我准备好了", base.Add(40*time.Second)),
			entMessage(4, 1, "张三", "那就开始吧", base.Add(70*time.Second)),
			entMessage(5, 2, "李四", "发布窗口定在晚上八点", base.Add(110*time.Second)),
		},
	}

	// 远程和本地均不可用，由抽取式后端兜底
	remote := &stubBackend{name: BackendRemoteLLM, available: false}
	local := &stubBackend{name: BackendLocalModel, available: false}
	chain := NewBackendChain(remote, local, NewExtractiveBackend(600))
	orchestrator := newTestOrchestrator(source, chain)

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StatusProduced, result.Status)
	assert.Equal(t, BackendExtractive, result.Backend)
	assert.NotEmpty(t, result.Text)
	assert.Equal(t, 1, result.SegmentCount)
	assert.Equal(t, 3, result.ParticipantCount)
	assert.False(t, result.GeneratedAt.IsZero())
}

func TestOrchestrator_InsufficientActivity(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &mockMessageSource{
		messages: []*ent.Message{
			entMessage(1, 1, "张三", "在吗", base),
			entMessage(2, 2, "李四", "在的", base.Add(time.Minute)),
		},
	}

	remote := &stubBackend{name: BackendRemoteLLM, available: true, text: "远程摘要"}
	local := &stubBackend{name: BackendLocalModel, available: true, text: "本地摘要"}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	chain := NewBackendChain(remote, local, extractive)
	orchestrator := newTestOrchestrator(source, chain)

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StatusInsufficientActivity, result.Status)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Backend)

	// 消息不足时不应调用任何后端
	assert.Equal(t, 0, remote.calls)
	assert.Equal(t, 0, local.calls)
	assert.Equal(t, 0, extractive.calls)
}

func TestOrchestrator_NoMessages(t *testing.T) {
	source := &mockMessageSource{}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	orchestrator := newTestOrchestrator(source, NewBackendChain(extractive))

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusInsufficientActivity, result.Status)
	assert.Equal(t, 0, extractive.calls)
}

func TestOrchestrator_AllBackendsFailed(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &mockMessageSource{
		messages: []*ent.Message{
			entMessage(1, 1, "张三", "第一条消息", base),
			entMessage(2, 2, "李四", "第二条消息", base.Add(time.Minute)),
			entMessage(3, 3, "王五", "第三条消息", base.Add(2*time.Minute)),
		},
	}

	remote := &stubBackend{name: BackendRemoteLLM, available: true, err: errors.New("请求超时")}
	local := &stubBackend{name: BackendLocalModel, available: true, err: ErrInference}
	extractive := &stubBackend{name: BackendExtractive, available: true, err: ErrEmptyInput}
	chain := NewBackendChain(remote, local, extractive)
	orchestrator := newTestOrchestrator(source, chain)

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	// 后端链耗尽降级为占位文本，而不是调用方错误
	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, FallbackText, result.Text)
	assert.NotEmpty(t, result.Text)
	assert.Equal(t, 1, result.SegmentCount)
}

func TestOrchestrator_SourceError(t *testing.T) {
	sourceErr := errors.New("数据库连接失败")
	source := &mockMessageSource{err: sourceErr}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	orchestrator := newTestOrchestrator(source, NewBackendChain(extractive))

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	assert.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	assert.Nil(t, result)
	assert.Equal(t, 0, extractive.calls)
}

func TestOrchestrator_RequestOverrides(t *testing.T) {
	// 请求级阈值覆盖引擎默认值
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &mockMessageSource{
		messages: []*ent.Message{
			entMessage(1, 1, "张三", "只有一条消息", base),
		},
	}

	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	orchestrator := newTestOrchestrator(source, NewBackendChain(extractive))

	req := testRequest()
	req.MinMessages = 1
	result, err := orchestrator.ProduceSummary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StatusProduced, result.Status)
	assert.Equal(t, 1, extractive.calls)
}

func TestOrchestrator_GapSplit(t *testing.T) {
	// 超过间隔阈值的空档切分成多段
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	source := &mockMessageSource{
		messages: []*ent.Message{
			entMessage(1, 1, "张三", "上午的话题", base),
			entMessage(2, 2, "李四", "我有个想法", base.Add(time.Minute)),
			entMessage(3, 1, "张三", "说说看", base.Add(2*time.Minute)),
			entMessage(4, 3, "王五", "下午继续聊", base.Add(32*time.Minute)),
			entMessage(5, 2, "李四", "好啊", base.Add(33*time.Minute)),
		},
	}

	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	orchestrator := newTestOrchestrator(source, NewBackendChain(extractive))

	result, err := orchestrator.ProduceSummary(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusProduced, result.Status)
	assert.Equal(t, 2, result.SegmentCount)
	assert.Equal(t, 3, result.ParticipantCount)
}
