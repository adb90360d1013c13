package teleapp

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/fachebot/chat-digest-bot/internal/model"
	"github.com/fachebot/chat-digest-bot/internal/notify"
	"github.com/fachebot/chat-digest-bot/internal/summarizer"
	"github.com/fachebot/chat-digest-bot/internal/svc"

	"github.com/zelenin/go-tdlib/client"
)

const (
	digestCommand    = "/digest"
	defaultHoursBack = 24  // /digest 默认回溯小时数
	maxHoursBack     = 168 // /digest 最大回溯小时数（1 周）
)

type TeleApp struct {
	svcCtx     *svc.ServiceContext
	notifier   *notify.Notifier
	user       *client.User
	tdClient   *client.Client
	listener   *client.Listener
	parameters *client.SetTdlibParametersRequest
	usersMu    sync.RWMutex
	usersCache map[int64]*client.User
	chatsMu    sync.RWMutex
	chatsCache map[int64]*client.Chat
	ctx        context.Context
	cancel     context.CancelFunc
	ctxMu      sync.Mutex
}

func NewApp(svcCtx *svc.ServiceContext, apiId int32, apiHash, dataDir string) *TeleApp {
	_, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	})
	if err != nil {
		logger.Fatalf("[TeleApp] 设置日志级别错误, %s", err)
	}

	parameters := &client.SetTdlibParametersRequest{
		UseTestDc:           false,
		DatabaseDirectory:   filepath.Join(dataDir, ".tdlib", "database"),
		FilesDirectory:      filepath.Join(dataDir, ".tdlib", "files"),
		UseFileDatabase:     true,
		UseChatInfoDatabase: true,
		UseMessageDatabase:  true,
		UseSecretChats:      false,
		ApiId:               apiId,
		ApiHash:             apiHash,
		SystemLanguageCode:  "en",
		DeviceModel:         "Server",
		SystemVersion:       "1.0.0",
		ApplicationVersion:  "1.0.0",
	}

	app := &TeleApp{
		svcCtx:     svcCtx,
		parameters: parameters,
		chatsCache: make(map[int64]*client.Chat),
		usersCache: make(map[int64]*client.User),
	}
	return app
}

// SetNotifier 注入通知器，用于 /digest 命令回复（登录后由 main 设置）
func (app *TeleApp) SetNotifier(notifier *notify.Notifier) {
	app.notifier = notifier
}

func (app *TeleApp) Login(options ...client.Option) (*client.User, error) {
	if app.user != nil {
		return app.user, nil
	}

	authorizer := client.ClientAuthorizer(app.parameters)
	go client.CliInteractor(authorizer)

	tdlibClient, err := client.NewClient(authorizer, options...)
	if err != nil {
		return nil, err
	}

	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, err
	}

	app.user = me
	app.tdClient = tdlibClient

	chats, err := app.tdClient.GetChats(&client.GetChatsRequest{Limit: 100})
	if err != nil {
		logger.Warnf("[TeleApp] 获取聊天列表失败: %v", err)
	} else {
		for _, chatId := range chats.ChatIds {
			chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", chatId, err)
				continue
			}
			monitored := ""
			if app.svcCtx.Config.IsMonitored(chat.Id) {
				monitored = " (已监控)"
			}
			logger.Infof("[TeleApp] 聊天列表: %s[%d]%s", chat.Title, chat.Id, monitored)
		}
	}

	listener := tdlibClient.GetListener()
	app.listener = listener

	app.ctxMu.Lock()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.ctxMu.Unlock()

	go app.getUpdates(listener)

	return me, nil
}

func (app *TeleApp) Client() *client.Client {
	return app.tdClient
}

func (app *TeleApp) Close() error {
	if app.tdClient == nil {
		return nil
	}

	app.ctxMu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.ctxMu.Unlock()

	if app.listener != nil {
		app.listener.Close()
	}

	_, err := app.tdClient.Close()
	return err
}

func (app *TeleApp) getChat(chatId int64) (*client.Chat, error) {
	// 先尝试读锁读取缓存
	app.chatsMu.RLock()
	chat, ok := app.chatsCache[chatId]
	app.chatsMu.RUnlock()
	if ok {
		return chat, nil
	}

	// 缓存未命中，获取数据
	chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.chatsMu.Lock()
	app.chatsCache[chatId] = chat
	app.chatsMu.Unlock()
	return chat, nil
}

func (app *TeleApp) getUser(userId int64) (*client.User, error) {
	// 先尝试读锁读取缓存
	app.usersMu.RLock()
	user, ok := app.usersCache[userId]
	app.usersMu.RUnlock()
	if ok {
		return user, nil
	}

	// 缓存未命中，获取数据
	user, err := app.tdClient.GetUser(&client.GetUserRequest{UserId: userId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.usersMu.Lock()
	app.usersCache[userId] = user
	app.usersMu.Unlock()
	return user, nil
}

func (app *TeleApp) getUpdates(listener *client.Listener) {
	app.ctxMu.Lock()
	ctx := app.ctx
	app.ctxMu.Unlock()

	for listener.IsActive() {
		select {
		case <-ctx.Done():
			logger.Infof("[TeleApp] 更新循环已取消，退出")
			return
		case update := <-listener.Updates:
			if update.GetType() != "updateNewMessage" {
				continue
			}

			// 仅处理文本消息
			updateNewMessage := update.(*client.UpdateNewMessage)
			message := updateNewMessage.Message
			if message.Content.MessageContentType() != "messageText" {
				continue
			}

			text := message.Content.(*client.MessageText)
			if text.Text == nil || text.Text.Text == "" {
				continue
			}

			// 获取来源Chat信息
			chat, err := app.getChat(message.ChatId)
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", message.ChatId, err)
				continue
			}

			// 过滤私聊和密聊
			switch chat.Type.ChatTypeType() {
			case client.TypeChatTypePrivate, client.TypeChatTypeSecret:
				continue
			}

			// 仅处理被监控的群聊
			if !app.svcCtx.Config.IsMonitored(chat.Id) {
				continue
			}

			logger.Debugf("[TeleApp] 接收消息: %s[%d] -> %s", chat.Title, chat.Id, text.Text.Text)

			// /digest 命令：手动触发当前群聊的摘要
			if strings.HasPrefix(strings.TrimSpace(text.Text.Text), digestCommand) {
				go app.handleDigestCommand(ctx, chat, text.Text.Text)
				continue
			}

			// 获取发送者信息
			senderID := int64(0)
			var senderName string
			var senderUsername *string

			if message.SenderId != nil {
				switch sender := message.SenderId.(type) {
				case *client.MessageSenderUser:
					senderID = sender.UserId
					user, err := app.getUser(sender.UserId)
					if err != nil {
						logger.Warnf("[TeleApp] 获取用户信息失败, id: %d, %v", sender.UserId, err)
						continue
					}
					senderName = user.FirstName
					if user.LastName != "" {
						senderName += " " + user.LastName
					}
					if user.Usernames != nil && len(user.Usernames.ActiveUsernames) > 0 {
						username := "@" + user.Usernames.ActiveUsernames[0]
						senderUsername = &username
					}
				}
			}

			// 保存消息到数据库
			msgData := &model.MessageData{
				MessageID:      message.Id,
				ChatID:         message.ChatId,
				SenderID:       senderID,
				SenderName:     senderName,
				SenderUsername: senderUsername,
				Text:           text.Text.Text,
				SentAt:         time.Unix(int64(message.Date), 0).UTC(),
			}

			_, err = app.svcCtx.MessageModel.Create(ctx, msgData)
			if err != nil {
				logger.Errorf("[TeleApp] 保存消息失败, %v", err)
				continue
			}

			logger.Debugf("[TeleApp] 保存消息: %s[%d] -> %s: %s", chat.Title, chat.Id, senderName, text.Text.Text)
		}
	}
}

// handleDigestCommand 处理 /digest [hours] 命令：总结当前群聊最近 hours 小时的消息并回复
func (app *TeleApp) handleDigestCommand(ctx context.Context, chat *client.Chat, text string) {
	if app.notifier == nil {
		logger.Warnf("[TeleApp] 通知器未初始化，忽略 %s 命令", digestCommand)
		return
	}

	hours := defaultHoursBack
	fields := strings.Fields(text)
	if len(fields) > 1 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil || parsed <= 0 {
			_ = app.notifier.SendToChat(ctx, chat.Id, "用法: /digest [小时数]")
			return
		}
		if parsed > maxHoursBack {
			parsed = maxHoursBack
		}
		hours = parsed
	}

	logger.Infof("[TeleApp] 群聊 %s[%d] 触发手动摘要，回溯 %d 小时", chat.Title, chat.Id, hours)

	endTime := time.Now().UTC()
	startTime := endTime.Add(-time.Duration(hours) * time.Hour)

	result, err := app.svcCtx.Orchestrator.ProduceSummary(ctx, summarizer.SummaryRequest{
		ChatID:    chat.Id,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		logger.Errorf("[TeleApp] 手动摘要失败 (chatID=%d): %v", chat.Id, err)
		_ = app.notifier.SendToChat(ctx, chat.Id, "生成摘要时出错，请稍后重试。")
		return
	}

	content := summarizer.FormatDigestForDisplay(
		result,
		chat.Title,
		startTime.Format("2006-01-02 15:04"),
		endTime.Format("2006-01-02 15:04"),
	)
	if err := app.notifier.SendToChat(ctx, chat.Id, content); err != nil {
		logger.Errorf("[TeleApp] 发送手动摘要失败 (chatID=%d): %v", chat.Id, err)
	}
}
