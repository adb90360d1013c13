package model

import (
	"context"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/ent"
	"github.com/fachebot/chat-digest-bot/internal/ent/message"
)

type MessageModel struct {
	client *ent.MessageClient
}

func NewMessageModel(client *ent.MessageClient) *MessageModel {
	return &MessageModel{client: client}
}

type MessageData struct {
	MessageID      int64
	ChatID         int64
	SenderID       int64
	SenderName     string
	SenderUsername *string
	Text           string
	SentAt         time.Time
}

// Create 创建消息
func (m *MessageModel) Create(ctx context.Context, data *MessageData) (*ent.Message, error) {
	create := m.client.Create().
		SetMessageID(data.MessageID).
		SetChatID(data.ChatID).
		SetSenderID(data.SenderID).
		SetSenderName(data.SenderName).
		SetText(data.Text).
		SetSentAt(data.SentAt)

	if data.SenderUsername != nil {
		create.SetSenderUsername(*data.SenderUsername)
	}
	return create.Save(ctx)
}

// GetByRangeAndChat 查询时间区间 [startTime, endTime) 内的消息，按发送时间升序
func (m *MessageModel) GetByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) ([]*ent.Message, error) {
	return m.client.Query().
		Where(
			message.ChatIDEQ(chatID),
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Order(message.BySentAt()).
		All(ctx)
}

// CountByRangeAndChat 统计时间区间内的消息数量
func (m *MessageModel) CountByRangeAndChat(ctx context.Context, chatID int64, startTime, endTime time.Time) (int, error) {
	return m.client.Query().
		Where(
			message.ChatIDEQ(chatID),
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Count(ctx)
}

// GetChatIDsByRange 查询指定时间区间内有消息的所有群聊ID
func (m *MessageModel) GetChatIDsByRange(ctx context.Context, startTime, endTime time.Time) ([]int64, error) {
	messages, err := m.client.Query().
		Where(
			message.SentAtGTE(startTime),
			message.SentAtLT(endTime),
		).
		Select(message.FieldChatID).
		All(ctx)
	if err != nil {
		return nil, err
	}

	// 使用 map 去重
	chatIDMap := make(map[int64]bool)
	for _, msg := range messages {
		chatIDMap[msg.ChatID] = true
	}

	chatIDs := make([]int64, 0, len(chatIDMap))
	for chatID := range chatIDMap {
		chatIDs = append(chatIDs, chatID)
	}

	return chatIDs, nil
}

// DeleteBefore 删除指定日期之前的消息
func (m *MessageModel) DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error) {
	return m.client.Delete().
		Where(message.SentAtLT(cutoffDate)).
		Exec(ctx)
}
