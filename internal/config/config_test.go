package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		TelegramApp: TelegramApp{ApiId: 12345, ApiHash: "hash"},
		LLM: LLM{
			BaseURL:   "https://api.openai.com/v1",
			APIKey:    "sk-test",
			Model:     "gpt-4o-mini",
			MaxTokens: 16000,
		},
		Summary: Summary{Cron: "0 23 * * *", RetentionDays: 30},
		Guilds: []GuildConfig{
			{
				Name:            "example",
				MonitoredChats:  []int64{-100, -200},
				DestinationChat: -300,
			},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	c := validConfig()
	c.TelegramApp.ApiId = 0
	assert.Error(t, c.Validate())

	// APIKey 为空是合法配置，远程后端只是不可用
	c = validConfig()
	c.LLM.APIKey = ""
	c.LLM.Model = ""
	assert.NoError(t, c.Validate())

	// APIKey 非空时必须配齐模型参数
	c = validConfig()
	c.LLM.Model = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Summary.Cron = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Guilds = nil
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Guilds[0].MonitoredChats = nil
	assert.Error(t, c.Validate())

	// 测试模式要求提供测试用户，但不再要求目标群聊
	c = validConfig()
	c.Guilds[0].TestMode = true
	c.Guilds[0].DestinationChat = 0
	assert.Error(t, c.Validate())
	c.Guilds[0].TestUserIds = []int64{1}
	assert.NoError(t, c.Validate())

	// 本地后端开启时必须配齐端点参数
	c = validConfig()
	c.LocalLLM.Enable = true
	assert.Error(t, c.Validate())
	c.LocalLLM.BaseURL = "http://127.0.0.1:11434/v1"
	c.LocalLLM.Model = "qwen2.5:7b"
	c.LocalLLM.MaxTokens = 8000
	assert.NoError(t, c.Validate())
}

func TestGuildForChat(t *testing.T) {
	c := validConfig()

	guild := c.GuildForChat(-100)
	require.NotNil(t, guild)
	assert.Equal(t, "example", guild.Name)

	assert.Nil(t, c.GuildForChat(-999))
	assert.True(t, c.IsMonitored(-200))
	assert.False(t, c.IsMonitored(-999))
}

func TestLoadFromFile(t *testing.T) {
	content := `
LogLevel: info
TelegramApp:
  ApiId: 12345
  ApiHash: "hash"
LLM:
  BaseURL: "https://api.openai.com/v1"
  APIKey: ""
  Model: "gpt-4o-mini"
  MaxTokens: 16000
Summary:
  Cron: "0 23 * * *"
  RetentionDays: 30
Guilds:
  - Name: "example"
    MonitoredChats: [-100]
    DestinationChat: -300
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// 环境变量覆盖 APIKey
	t.Setenv("LLM_API_KEY", "sk-from-env")

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "sk-from-env", c.LLM.APIKey)
	require.Len(t, c.Guilds, 1)
	assert.Equal(t, int64(-300), c.Guilds[0].DestinationChat)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}
