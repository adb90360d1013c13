package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) Config {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: 16000,
	}
}

func TestComplete_Integration(t *testing.T) {
	client := NewClient(integrationTestConfig(t))
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	transcript := `[张三|1] 大家下午好，我们来同步一下本周进度
[李四|2] 好的，我这边前端页面基本完成了，还差几个接口联调
[王五|3] 后端 API 已经开发完了，文档也更新到 swagger 了
[张三|1] 不错，李四你明天跟王五对接一下，把接口串起来
[李四|2] 行，我上午找他`

	result, err := client.Complete(ctx, "你是群聊总结助手，用中文概括下面的群聊内容。", transcript)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	t.Log("\n--- 摘要 ---")
	t.Log(result)
}

func TestComplete_Integration_BadKey(t *testing.T) {
	cfg := integrationTestConfig(t)
	cfg.APIKey = "sk-invalid-key-for-test"
	client := NewClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.Complete(ctx, "你是群聊总结助手。", "[张三|1] 测试消息")
	assert.ErrorIs(t, err, ErrAuth)
}
