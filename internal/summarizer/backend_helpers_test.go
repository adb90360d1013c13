package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteLLMBackend_Available(t *testing.T) {
	assert.False(t, NewRemoteLLMBackend(nil, false).Available())
	assert.False(t, NewRemoteLLMBackend(nil, true).Available())
}

func TestLocalModelBackend_Available(t *testing.T) {
	assert.False(t, NewLocalModelBackend(nil, false).Available())
	assert.False(t, NewLocalModelBackend(nil, true).Available())
}

func TestLocalModelBackend_UnavailableSummarize(t *testing.T) {
	backend := NewLocalModelBackend(nil, false)
	_, err := backend.Summarize(context.Background(), testSegments())
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestTrimToTokenBudget(t *testing.T) {
	lines := []string{
		"[张三|1] 第一条很早的消息内容",
		"[李四|2] 第二条比较早的消息内容",
		"[王五|3] 第三条最近的消息内容",
	}

	// 预算充足时不截取
	kept := trimToTokenBudget(lines, 100000)
	assert.Equal(t, lines, kept)

	// 预算极小时仍保留最后一行
	kept = trimToTokenBudget(lines, 1)
	require.Len(t, kept, 1)
	assert.Equal(t, lines[2], kept[0])

	// 截取时保留的是尾部（最近的消息）
	kept = trimToTokenBudget(lines, 40)
	require.NotEmpty(t, kept)
	assert.Equal(t, lines[len(lines)-len(kept):], kept)
}

func TestSplitLinesIntoChunks(t *testing.T) {
	assert.Nil(t, splitLinesIntoChunks(nil, 100))

	lines := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, "[张三|1] "+strings.Repeat("消息内容", 5))
	}

	// 预算充足时只有一个 chunk
	chunks := splitLinesIntoChunks(lines, 100000)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 10)

	// 预算较小时拆成多个 chunk，拼接后覆盖全部输入行
	chunks = splitLinesIntoChunks(lines, 80)
	require.Greater(t, len(chunks), 1)
	flattened := make([]string, 0, len(lines))
	for _, chunk := range chunks {
		require.NotEmpty(t, chunk)
		flattened = append(flattened, chunk...)
	}
	assert.Equal(t, lines, flattened)

	// 单行超预算时独占一个 chunk，而不是被丢弃
	chunks = splitLinesIntoChunks(lines, 1)
	assert.Len(t, chunks, len(lines))
}
