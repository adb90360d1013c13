//go:build linux
// +build linux

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/chat-digest-bot/internal/config"
	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/fachebot/chat-digest-bot/internal/notify"
	"github.com/fachebot/chat-digest-bot/internal/scheduler"
	"github.com/fachebot/chat-digest-bot/internal/svc"
	"github.com/fachebot/chat-digest-bot/internal/teleapp"

	"github.com/joho/godotenv"
	"github.com/zelenin/go-tdlib/client"
)

var configFile = flag.String("f", "etc/config.yaml", "the config file")

func main() {
	flag.Parse()

	// 加载 .env（如存在），LLM_API_KEY 等密钥可放在环境变量里
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("加载 .env 文件失败, %s", err)
	}

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}
	logger.SetLevel(c.LogLevel)

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 运行Telegram App
	options := make([]client.Option, 0)
	if c.Sock5Proxy.Enable {
		options = append(options, client.WithProxy(&client.AddProxyRequest{
			Server: c.Sock5Proxy.Host,
			Port:   c.Sock5Proxy.Port,
			Enable: c.Sock5Proxy.Enable,
			Type:   &client.ProxyTypeSocks5{},
		}))
	}

	// 创建TeleApp
	app := teleapp.NewApp(svcCtx, c.TelegramApp.ApiId, c.TelegramApp.ApiHash, "data")
	user, err := app.Login(options...)
	if err != nil {
		logger.Fatalf("[TeleApp] 用户登录失败, %s", err)
	}
	logger.Infof("[TeleApp] 用户 <%s %s>(%d) 登录成功", user.FirstName, user.LastName, user.Id)

	// 创建通知器
	notifierInstance := notify.NewNotifier(app.Client())
	app.SetNotifier(notifierInstance)

	// 创建并启动调度器
	schedulerInstance := scheduler.NewScheduler(
		svcCtx.Orchestrator,
		notifierInstance,
		svcCtx.MessageModel,
		svcCtx.SummaryModel,
		svcCtx.TaskModel,
		svcCtx.DailyRunModel,
		c,
	)
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	schedulerInstance.Stop()
	err = app.Close()
	if err != nil {
		logger.Infof("[TeleApp] 关闭失败, %v", err)
	}
	svcCtx.Close()
	logger.Infof("服务已停止")
}
