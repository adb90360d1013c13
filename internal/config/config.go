package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramApp struct {
	ApiId   int32  `yaml:"ApiId"`
	ApiHash string `yaml:"ApiHash"`
}

// LLM 远程摘要后端配置，兼容 OpenAI API 的端点
type LLM struct {
	BaseURL        string `yaml:"BaseURL"`
	APIKey         string `yaml:"APIKey"`         // 为空表示远程后端不可用，可由环境变量 LLM_API_KEY 覆盖
	Model          string `yaml:"Model"`          // 如 gpt-4o, deepseek-chat, qwen-plus
	MaxTokens      int    `yaml:"MaxTokens"`      // 模型上下文窗口大小
	RequestTimeout int    `yaml:"RequestTimeout"` // 单次请求超时（秒），默认 120
}

// LocalLLM 本地摘要后端配置，指向本地推理服务（llama.cpp/ollama 等 OpenAI 兼容端点）
type LocalLLM struct {
	Enable          bool   `yaml:"Enable"`
	BaseURL         string `yaml:"BaseURL"` // 如 http://127.0.0.1:11434/v1
	Model           string `yaml:"Model"`
	MaxTokens       int    `yaml:"MaxTokens"`       // 本地模型上下文窗口大小
	InferenceBudget int    `yaml:"InferenceBudget"` // 单次推理墙钟预算（秒），默认 300
}

// Engine 总结引擎参数
type Engine struct {
	MinMessages  int `yaml:"MinMessages"`  // 最小消息数阈值，低于则视为无足够活跃度，默认 3
	GapMinutes   int `yaml:"GapMinutes"`   // 会话切分的时间间隔阈值（分钟），默认 10
	TargetLength int `yaml:"TargetLength"` // 抽取式摘要的目标长度（字符），默认 600
}

// GuildConfig 摘要组配置：一组被监控的群聊和它们的摘要去向
// 引擎只读，不会修改
type GuildConfig struct {
	Name            string  `yaml:"Name"`
	MonitoredChats  []int64 `yaml:"MonitoredChats"`  // 被监控的群聊ID列表
	DestinationChat int64   `yaml:"DestinationChat"` // 摘要发布的目标群聊ID
	TestMode        bool    `yaml:"TestMode"`        // 测试模式：摘要私信给 TestUserIds 而非发布到目标群聊
	TestUserIds     []int64 `yaml:"TestUserIds"`
}

type Summary struct {
	Cron          string `yaml:"Cron"`          // cron 表达式，如 "0 23 * * *"
	RetentionDays int    `yaml:"RetentionDays"` // 消息保留天数
	RetryTimes    int    `yaml:"RetryTimes"`    // 总结失败重试次数，默认 3
	RetryInterval int    `yaml:"RetryInterval"` // 重试间隔（秒），默认 60
}

type Config struct {
	LogLevel    string        `yaml:"LogLevel"` // debug/info/warn/error，默认 debug
	Sock5Proxy  Sock5Proxy    `yaml:"Sock5Proxy"`
	TelegramApp TelegramApp   `yaml:"TelegramApp"`
	LLM         LLM           `yaml:"LLM"`
	LocalLLM    LocalLLM      `yaml:"LocalLLM"`
	Engine      Engine        `yaml:"Engine"`
	Summary     Summary       `yaml:"Summary"`
	Guilds      []GuildConfig `yaml:"Guilds"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	// 环境变量覆盖 API Key，避免密钥落盘
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 TelegramApp
	if c.TelegramApp.ApiId == 0 {
		return fmt.Errorf("TelegramApp.ApiId 不能为空")
	}
	if c.TelegramApp.ApiHash == "" {
		return fmt.Errorf("TelegramApp.ApiHash 不能为空")
	}

	// 验证 LLM：APIKey 允许为空（远程后端标记为不可用，由后端链降级）
	if c.LLM.APIKey != "" {
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("LLM.BaseURL 不能为空")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("LLM.Model 不能为空")
		}
		if c.LLM.MaxTokens <= 0 {
			return fmt.Errorf("LLM.MaxTokens 必须大于 0")
		}
	}

	// 验证 LocalLLM
	if c.LocalLLM.Enable {
		if c.LocalLLM.BaseURL == "" {
			return fmt.Errorf("LocalLLM.BaseURL 不能为空")
		}
		if c.LocalLLM.Model == "" {
			return fmt.Errorf("LocalLLM.Model 不能为空")
		}
		if c.LocalLLM.MaxTokens <= 0 {
			return fmt.Errorf("LocalLLM.MaxTokens 必须大于 0")
		}
	}

	// 验证 Engine
	if c.Engine.MinMessages < 0 {
		return fmt.Errorf("Engine.MinMessages 必须 >= 0")
	}
	if c.Engine.GapMinutes < 0 {
		return fmt.Errorf("Engine.GapMinutes 必须 >= 0")
	}
	if c.Engine.TargetLength < 0 {
		return fmt.Errorf("Engine.TargetLength 必须 >= 0")
	}

	// 验证 Summary
	if c.Summary.Cron == "" {
		return fmt.Errorf("Summary.Cron 不能为空")
	}
	if c.Summary.RetentionDays < 0 {
		return fmt.Errorf("Summary.RetentionDays 必须 >= 0")
	}
	if c.Summary.RetryTimes < 0 {
		return fmt.Errorf("Summary.RetryTimes 必须 >= 0")
	}
	if c.Summary.RetryInterval < 0 {
		return fmt.Errorf("Summary.RetryInterval 必须 >= 0")
	}

	// 验证 Guilds
	if len(c.Guilds) == 0 {
		return fmt.Errorf("Guilds 不能为空")
	}
	for i, g := range c.Guilds {
		if g.Name == "" {
			return fmt.Errorf("Guilds[%d].Name 不能为空", i)
		}
		if len(g.MonitoredChats) == 0 {
			return fmt.Errorf("Guilds[%d].MonitoredChats 不能为空", i)
		}
		if g.TestMode {
			if len(g.TestUserIds) == 0 {
				return fmt.Errorf("Guilds[%d].TestUserIds 不能为空（当 TestMode 开启时）", i)
			}
		} else if g.DestinationChat == 0 {
			return fmt.Errorf("Guilds[%d].DestinationChat 不能为空", i)
		}
	}

	return nil
}

// GuildForChat 查找包含指定群聊的摘要组，未配置返回 nil
func (c *Config) GuildForChat(chatID int64) *GuildConfig {
	for i := range c.Guilds {
		for _, id := range c.Guilds[i].MonitoredChats {
			if id == chatID {
				return &c.Guilds[i]
			}
		}
	}
	return nil
}

// IsMonitored 判断群聊是否在任一摘要组的监控列表中
func (c *Config) IsMonitored(chatID int64) bool {
	return c.GuildForChat(chatID) != nil
}
