package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend 测试用后端：记录调用次数，返回预设结果
type stubBackend struct {
	name      string
	available bool
	text      string
	err       error
	calls     int
}

func (b *stubBackend) Name() string {
	return b.name
}

func (b *stubBackend) Available() bool {
	return b.available
}

func (b *stubBackend) Summarize(ctx context.Context, segments []ConversationSegment) (string, error) {
	b.calls++
	return b.text, b.err
}

func testSegments() []ConversationSegment {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		mustMessage(1, "张三", "今天部署了新版本", base),
		mustMessage(2, "李四", "我这边测试通过了", base.Add(time.Minute)),
		mustMessage(3, "王五", "那就发布吧", base.Add(2*time.Minute)),
	}
	return []ConversationSegment{
		{
			Messages:     msgs,
			Participants: []int64{1, 2, 3},
			StartAt:      base,
			EndAt:        base.Add(2 * time.Minute),
		},
	}
}

func TestBackendChain_FirstSuccess(t *testing.T) {
	remote := &stubBackend{name: BackendRemoteLLM, available: true, text: "远程摘要"}
	local := &stubBackend{name: BackendLocalModel, available: true, text: "本地摘要"}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	chain := NewBackendChain(remote, local, extractive)

	text, backend, err := chain.Run(context.Background(), testSegments())
	require.NoError(t, err)
	assert.Equal(t, "远程摘要", text)
	assert.Equal(t, BackendRemoteLLM, backend)

	// 首个后端成功，后续后端不应被调用
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 0, local.calls)
	assert.Equal(t, 0, extractive.calls)
}

func TestBackendChain_SkipUnavailable(t *testing.T) {
	// 远程不可用时跳到本地，本地成功则不触碰抽取式
	remote := &stubBackend{name: BackendRemoteLLM, available: false}
	local := &stubBackend{name: BackendLocalModel, available: true, text: "本地摘要"}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	chain := NewBackendChain(remote, local, extractive)

	text, backend, err := chain.Run(context.Background(), testSegments())
	require.NoError(t, err)
	assert.Equal(t, "本地摘要", text)
	assert.Equal(t, BackendLocalModel, backend)

	assert.Equal(t, 0, remote.calls)
	assert.Equal(t, 1, local.calls)
	assert.Equal(t, 0, extractive.calls)
}

func TestBackendChain_FallThroughOnFailure(t *testing.T) {
	remote := &stubBackend{name: BackendRemoteLLM, available: true, err: errors.New("请求超时")}
	local := &stubBackend{name: BackendLocalModel, available: true, err: ErrInference}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	chain := NewBackendChain(remote, local, extractive)

	text, backend, err := chain.Run(context.Background(), testSegments())
	require.NoError(t, err)
	assert.Equal(t, "抽取摘要", text)
	assert.Equal(t, BackendExtractive, backend)

	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 1, local.calls)
	assert.Equal(t, 1, extractive.calls)
}

func TestBackendChain_SkipEmptyText(t *testing.T) {
	// 后端返回空文本视为失败，继续降级
	remote := &stubBackend{name: BackendRemoteLLM, available: true, text: ""}
	extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
	chain := NewBackendChain(remote, extractive)

	text, backend, err := chain.Run(context.Background(), testSegments())
	require.NoError(t, err)
	assert.Equal(t, "抽取摘要", text)
	assert.Equal(t, BackendExtractive, backend)
}

func TestBackendChain_AllExhausted(t *testing.T) {
	remote := &stubBackend{name: BackendRemoteLLM, available: false}
	local := &stubBackend{name: BackendLocalModel, available: true, err: ErrModelUnavailable}
	extractive := &stubBackend{name: BackendExtractive, available: true, err: ErrEmptyInput}
	chain := NewBackendChain(remote, local, extractive)

	text, backend, err := chain.Run(context.Background(), testSegments())
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNoBackendAvailable)
	assert.Empty(t, text)
	assert.Empty(t, backend)
}

func TestBackendChain_DeterministicOrder(t *testing.T) {
	// 相同配置下多次运行，选中的后端保持一致
	for i := 0; i < 5; i++ {
		remote := &stubBackend{name: BackendRemoteLLM, available: false}
		local := &stubBackend{name: BackendLocalModel, available: true, text: "本地摘要"}
		extractive := &stubBackend{name: BackendExtractive, available: true, text: "抽取摘要"}
		chain := NewBackendChain(remote, local, extractive)

		_, backend, err := chain.Run(context.Background(), testSegments())
		require.NoError(t, err)
		assert.Equal(t, BackendLocalModel, backend)
		assert.Equal(t, 0, extractive.calls)
	}
}
