package summarizer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractiveSegments() []ConversationSegment {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "今天我们讨论一下数据库迁移方案，主要是分表策略", base),
		mustMessage(2, "李四", "我倾向于按群聊维度分表，查询路径更短", base.Add(time.Minute)),
		mustMessage(3, "王五", "好的", base.Add(90*time.Second)),
		mustMessage(1, "张三", "分表策略确定后我来写迁移脚本", base.Add(2*time.Minute)),
		mustMessage(2, "李四", "/start", base.Add(3*time.Minute)),
	}
	return []ConversationSegment{
		{
			Messages:     msgs,
			Participants: []int64{1, 2, 3},
			StartAt:      base,
			EndAt:        base.Add(3 * time.Minute),
		},
	}
}

func TestExtractiveBackend_Summarize(t *testing.T) {
	backend := NewExtractiveBackend(600)
	assert.Equal(t, BackendExtractive, backend.Name())
	assert.True(t, backend.Available())

	text, err := backend.Summarize(context.Background(), extractiveSegments())
	require.NoError(t, err)
	require.NotEmpty(t, text)

	// 摘要引用原始消息的内容，命令消息被过滤
	assert.Contains(t, text, "分表")
	assert.NotContains(t, text, "/start")
}

func TestExtractiveBackend_Deterministic(t *testing.T) {
	backend := NewExtractiveBackend(600)

	first, err := backend.Summarize(context.Background(), extractiveSegments())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := backend.Summarize(context.Background(), extractiveSegments())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtractiveBackend_ChronologicalOutput(t *testing.T) {
	// 选中的消息按时间顺序输出，而不是分数顺序
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	segments := []ConversationSegment{
		{
			Messages: []Message{
				mustMessage(1, "张三", "先说个不太重要的小事情", base),
				mustMessage(2, "李四", "接下来是非常重要的发布计划，发布计划涉及发布窗口和回滚预案", base.Add(time.Minute)),
				mustMessage(3, "王五", "最后补充一下回滚预案的细节说明", base.Add(2*time.Minute)),
			},
			Participants: []int64{1, 2, 3},
			StartAt:      base,
			EndAt:        base.Add(2 * time.Minute),
		},
	}

	backend := NewExtractiveBackend(600)
	text, err := backend.Summarize(context.Background(), segments)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	idxPlan := strings.Index(text, "发布计划")
	idxDetail := strings.Index(text, "细节说明")
	require.NotEqual(t, -1, idxPlan)
	require.NotEqual(t, -1, idxDetail)
	assert.Less(t, idxPlan, idxDetail)
}

func TestExtractiveBackend_TargetLength(t *testing.T) {
	// 目标长度很小时只选取最高分的少量消息
	backend := NewExtractiveBackend(10)
	text, err := backend.Summarize(context.Background(), extractiveSegments())
	require.NoError(t, err)
	require.NotEmpty(t, text)
	assert.Equal(t, 1, len(strings.Split(text, "\n")))
}

func TestExtractiveBackend_AllFiltered(t *testing.T) {
	// 全部消息都被过滤时退回未过滤集合，仍要产出非空摘要
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	segments := []ConversationSegment{
		{
			Messages: []Message{
				mustMessage(1, "张三", "/start", base),
				mustMessage(2, "李四", "好的", base.Add(time.Minute)),
				mustMessage(3, "王五", "收到", base.Add(2*time.Minute)),
			},
			Participants: []int64{1, 2, 3},
			StartAt:      base,
			EndAt:        base.Add(2 * time.Minute),
		},
	}

	backend := NewExtractiveBackend(600)
	text, err := backend.Summarize(context.Background(), segments)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestExtractiveBackend_EmptyInput(t *testing.T) {
	backend := NewExtractiveBackend(600)
	text, err := backend.Summarize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, text)
}

func TestExtractiveBackend_Deduplicate(t *testing.T) {
	// 内容相同的消息只保留一条
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	segments := []ConversationSegment{
		{
			Messages: []Message{
				mustMessage(1, "张三", "明天上午十点开周会讨论排期", base),
				mustMessage(2, "李四", "明天上午十点开周会讨论排期", base.Add(time.Minute)),
				mustMessage(3, "王五", "明天上午十点开周会讨论排期！", base.Add(2*time.Minute)),
			},
			Participants: []int64{1, 2, 3},
			StartAt:      base,
			EndAt:        base.Add(2 * time.Minute),
		},
	}

	backend := NewExtractiveBackend(600)
	text, err := backend.Summarize(context.Background(), segments)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(text, "周会"))
}

func TestInformativeTokens(t *testing.T) {
	// 拉丁词取长度大于 3 的非停用词
	tokens := informativeTokens("we should deploy the migration script")
	assert.Contains(t, tokens, "deploy")
	assert.Contains(t, tokens, "migration")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "we")

	// 中文取相邻二字组合，停用词被剔除
	tokens = informativeTokens("我们讨论分表")
	assert.Contains(t, tokens, "讨论")
	assert.Contains(t, tokens, "分表")
	assert.NotContains(t, tokens, "我们")

	// 链接和 @ 提及不参与统计
	tokens = informativeTokens("https://example.com @someone deploy")
	assert.Equal(t, []string{"deploy"}, tokens)
}
