package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/config"
	"github.com/fachebot/chat-digest-bot/internal/ent"
	"github.com/fachebot/chat-digest-bot/internal/llm"
	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/fachebot/chat-digest-bot/internal/model"
	"github.com/fachebot/chat-digest-bot/internal/summarizer"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config         *config.Config
	DbClient       *ent.Client
	TransportProxy *http.Transport
	MessageModel   *model.MessageModel
	SummaryModel   *model.SummaryModel
	TaskModel      *model.TaskModel
	DailyRunModel  *model.DailyRunModel
	Orchestrator   *summarizer.Orchestrator
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	messageModel := model.NewMessageModel(client.Message)

	// 远程 LLM 后端，API Key 缺失时标记为不可用
	var remoteClient *llm.Client
	remoteEnabled := c.LLM.APIKey != ""
	if remoteEnabled {
		remoteClient = llm.NewClient(llm.Config{
			BaseURL:   c.LLM.BaseURL,
			APIKey:    c.LLM.APIKey,
			Model:     c.LLM.Model,
			MaxTokens: c.LLM.MaxTokens,
			Timeout:   time.Duration(c.LLM.RequestTimeout) * time.Second,
			Transport: transportProxy,
		})
	} else {
		logger.Warnf("[Svc] LLM.APIKey 未配置，远程摘要后端不可用")
	}

	// 本地模型后端，通过本地推理服务的 OpenAI 兼容端点调用
	var localClient *llm.Client
	if c.LocalLLM.Enable {
		budget := time.Duration(c.LocalLLM.InferenceBudget) * time.Second
		if budget <= 0 {
			budget = 5 * time.Minute
		}
		localClient = llm.NewClient(llm.Config{
			BaseURL:   c.LocalLLM.BaseURL,
			APIKey:    "local",
			Model:     c.LocalLLM.Model,
			MaxTokens: c.LocalLLM.MaxTokens,
			Timeout:   budget,
		})
	} else {
		logger.Infof("[Svc] LocalLLM 未启用，本地摘要后端不可用")
	}

	// 后端链优先级固定：远程 LLM -> 本地模型 -> 抽取式
	chain := summarizer.NewBackendChain(
		summarizer.NewRemoteLLMBackend(remoteClient, remoteEnabled),
		summarizer.NewLocalModelBackend(localClient, c.LocalLLM.Enable),
		summarizer.NewExtractiveBackend(c.Engine.TargetLength),
	)

	svcCtx := &ServiceContext{
		Config:         c,
		DbClient:       client,
		TransportProxy: transportProxy,
		MessageModel:   messageModel,
		SummaryModel:   model.NewSummaryModel(client.Summary),
		TaskModel:      model.NewTaskModel(client.Task),
		DailyRunModel:  model.NewDailyRunModel(client.DailyRun),
		Orchestrator:   summarizer.NewOrchestrator(messageModel, chain, &c.Engine),
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
