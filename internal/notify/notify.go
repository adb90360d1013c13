package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/chat-digest-bot/internal/config"
	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/zelenin/go-tdlib/client"
)

const (
	MaxMessageLength = 5000 // Telegram 消息最大长度
)

type Notifier struct {
	tdClient *client.Client
}

func NewNotifier(tdClient *client.Client) *Notifier {
	return &Notifier{
		tdClient: tdClient,
	}
}

// NotifyGuild 按摘要组配置发送摘要
// 测试模式下私信给 TestUserIds 并附加测试标头，否则发布到 DestinationChat
func (n *Notifier) NotifyGuild(ctx context.Context, guild *config.GuildConfig, content string) error {
	if content == "" {
		return nil
	}

	if guild.TestMode {
		testContent := fmt.Sprintf("🧪 <b>测试模式</b> - %s\n\n%s", guild.Name, content)
		var lastErr error
		for _, userID := range guild.TestUserIds {
			if err := n.SendToChat(ctx, userID, testContent); err != nil {
				logger.Errorf("[Notify] 发送测试摘要给用户 %d 失败: %v", userID, err)
				lastErr = err
				continue
			}
			logger.Infof("[Notify] 已发送测试摘要给用户 %d", userID)
		}
		return lastErr
	}

	if err := n.SendToChat(ctx, guild.DestinationChat, content); err != nil {
		return fmt.Errorf("发送摘要到群聊 %d 失败: %w", guild.DestinationChat, err)
	}
	logger.Infof("[Notify] 已发送摘要到群聊 %d", guild.DestinationChat)
	return nil
}

// SendToChat 发送消息到指定会话，超长内容按段落拆分为多条
func (n *Notifier) SendToChat(ctx context.Context, chatID int64, content string) error {
	if content == "" {
		return nil
	}

	for _, msg := range n.splitMessage(content) {
		formatted := n.parseHTMLText(msg)
		_, err := n.tdClient.SendMessage(&client.SendMessageRequest{
			ChatId: chatID,
			InputMessageContent: &client.InputMessageText{
				Text: formatted,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// parseHTMLText 使用 TDLib 的 HTML 解析能力，将 HTML 文本转换为带实体的 FormattedText。
// 支持的 HTML 标签：<b>粗体</b>、<a href="url">链接</a>
func (n *Notifier) parseHTMLText(text string) *client.FormattedText {
	if text == "" {
		return &client.FormattedText{Text: text}
	}

	formatted, err := client.ParseTextEntities(&client.ParseTextEntitiesRequest{
		Text:      text,
		ParseMode: &client.TextParseModeHTML{},
	})
	if err != nil {
		logger.Warnf("[Notify] 解析 HTML 文本失败，回退为纯文本发送: %v", err)
		return &client.FormattedText{Text: text}
	}
	return formatted
}

// splitMessage 将消息按长度拆分为多条
func (n *Notifier) splitMessage(content string) []string {
	if len(content) <= MaxMessageLength {
		return []string{content}
	}

	// 按段落拆分
	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) == 1 {
		// 如果没有段落分隔，按换行拆分
		paragraphs = strings.Split(content, "\n")
	}

	messages := make([]string, 0)
	currentMsg := ""

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		testMsg := currentMsg
		if testMsg != "" {
			testMsg += "\n\n"
		}
		testMsg += para

		if len(testMsg) <= MaxMessageLength {
			currentMsg = testMsg
			continue
		}

		// 当前消息已满，保存并开始新消息
		if currentMsg != "" {
			messages = append(messages, currentMsg)
			currentMsg = ""
		}

		if len(para) <= MaxMessageLength {
			currentMsg = para
			continue
		}

		// 单个段落超长，按句子进一步拆分
		sentences := strings.Split(para, "。")
		for _, sentence := range sentences {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			if len(currentMsg)+len(sentence)+2 > MaxMessageLength {
				if currentMsg != "" {
					messages = append(messages, currentMsg)
					currentMsg = ""
				}
			}
			if currentMsg != "" {
				currentMsg += "。"
			}
			currentMsg += sentence
		}
	}

	if currentMsg != "" {
		messages = append(messages, currentMsg)
	}

	return messages
}
