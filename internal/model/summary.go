package model

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/fachebot/chat-digest-bot/internal/ent"
	"github.com/fachebot/chat-digest-bot/internal/ent/summary"
)

type SummaryModel struct {
	client *ent.SummaryClient
}

func NewSummaryModel(client *ent.SummaryClient) *SummaryModel {
	return &SummaryModel{client: client}
}

type SummaryData struct {
	ChatID           int64
	StartTime        time.Time
	EndTime          time.Time
	Status           summary.Status
	Backend          string
	Content          string
	SegmentCount     int
	ParticipantCount int
	GeneratedAt      time.Time
}

// Create 创建摘要记录
func (m *SummaryModel) Create(ctx context.Context, data *SummaryData) (*ent.Summary, error) {
	create := m.client.Create().
		SetChatID(data.ChatID).
		SetStartTime(data.StartTime).
		SetEndTime(data.EndTime).
		SetStatus(data.Status).
		SetContent(data.Content).
		SetSegmentCount(data.SegmentCount).
		SetParticipantCount(data.ParticipantCount).
		SetGeneratedAt(data.GeneratedAt)

	if data.Backend != "" {
		create.SetBackend(data.Backend)
	}
	return create.Save(ctx)
}

// getByChatAndRange 按群聊和区间查询一条摘要
func (m *SummaryModel) getByChatAndRange(ctx context.Context, chatID int64, startTime, endTime time.Time) (*ent.Summary, error) {
	return m.client.Query().
		Where(
			summary.ChatIDEQ(chatID),
			summary.StartTimeEQ(startTime),
			summary.EndTimeEQ(endTime),
		).
		First(ctx)
}

// CreateOrUpdate 创建或更新摘要，同一群聊同一区间不重复插入，已存在则更新内容
func (m *SummaryModel) CreateOrUpdate(ctx context.Context, data *SummaryData) (*ent.Summary, error) {
	existing, err := m.getByChatAndRange(ctx, data.ChatID, data.StartTime, data.EndTime)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		update := m.client.UpdateOneID(existing.ID).
			SetStatus(data.Status).
			SetContent(data.Content).
			SetSegmentCount(data.SegmentCount).
			SetParticipantCount(data.ParticipantCount).
			SetGeneratedAt(data.GeneratedAt)
		if data.Backend != "" {
			update.SetBackend(data.Backend)
		} else {
			update.ClearBackend()
		}
		return update.Save(ctx)
	}
	return m.Create(ctx, data)
}

// GetLatestByChat 查询群聊最近一条摘要
func (m *SummaryModel) GetLatestByChat(ctx context.Context, chatID int64) (*ent.Summary, error) {
	return m.client.Query().
		Where(summary.ChatIDEQ(chatID)).
		Order(summary.ByGeneratedAt(sql.OrderDesc())).
		First(ctx)
}
