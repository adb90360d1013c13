package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/chat-digest-bot/internal/config"
	"github.com/fachebot/chat-digest-bot/internal/ent"
	"github.com/fachebot/chat-digest-bot/internal/ent/dailyrun"
	"github.com/fachebot/chat-digest-bot/internal/ent/summary"
	"github.com/fachebot/chat-digest-bot/internal/ent/task"
	"github.com/fachebot/chat-digest-bot/internal/logger"
	"github.com/fachebot/chat-digest-bot/internal/model"
	"github.com/fachebot/chat-digest-bot/internal/notify"
	"github.com/fachebot/chat-digest-bot/internal/summarizer"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron          *cron.Cron
	orchestrator  *summarizer.Orchestrator
	notifier      *notify.Notifier
	messageModel  *model.MessageModel
	summaryModel  *model.SummaryModel
	taskModel     *model.TaskModel
	dailyRunModel *model.DailyRunModel
	config        *config.Config
	ctx           context.Context
	cancel        context.CancelFunc
	mu            sync.Mutex
}

// locUTC 摘要窗口和 cron 调度统一使用 UTC
var locUTC = time.UTC

func NewScheduler(
	orchestrator *summarizer.Orchestrator,
	notifier *notify.Notifier,
	messageModel *model.MessageModel,
	summaryModel *model.SummaryModel,
	taskModel *model.TaskModel,
	dailyRunModel *model.DailyRunModel,
	cfg *config.Config,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(locUTC)),
		orchestrator:  orchestrator,
		notifier:      notifier,
		messageModel:  messageModel,
		summaryModel:  summaryModel,
		taskModel:     taskModel,
		dailyRunModel: dailyRunModel,
		config:        cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	// 注册每日总结任务
	_, err := s.cron.AddFunc(s.config.Summary.Cron, s.runDailyDigest)
	if err != nil {
		return fmt.Errorf("注册每日总结任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，每日总结任务: %s", s.config.Summary.Cron)

	// 启动时恢复未完成的任务
	go s.recoverDailyDigest()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// currentWindow 当日摘要区间 [今日0点, 明日0点)，任务在区间内触发时只覆盖已产生的消息
func (s *Scheduler) currentWindow() (time.Time, time.Time) {
	now := time.Now().In(locUTC)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, locUTC)
	return todayStart, todayStart.AddDate(0, 0, 1)
}

// recoverDailyDigest 恢复每日总结（未完成的 DailyRun、缺失的当日、未完成的 Task）
func (s *Scheduler) recoverDailyDigest() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	logger.Infof("[Scheduler] 开始恢复每日总结")

	// 1. 恢复未完成的 DailyRun
	incompleteRuns, err := s.dailyRunModel.GetIncompleteRuns(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成 DailyRun 失败: %v", err)
	} else {
		for _, run := range incompleteRuns {
			select {
			case <-ctx.Done():
				logger.Infof("[Scheduler] 恢复已取消")
				return
			default:
			}
			logger.Infof("[Scheduler] 恢复未完成 DailyRun: startTime=%s, endTime=%s", run.StartTime.Format("2006-01-02"), run.EndTime.Format("2006-01-02"))
			if err := s.executeDigestForRange(ctx, run.StartTime, run.EndTime); err != nil {
				logger.Errorf("[Scheduler] 恢复 DailyRun 失败: %v", err)
				_ = s.dailyRunModel.MarkFailed(ctx, run.ID, err.Error())
			} else {
				_ = s.dailyRunModel.MarkCompleted(ctx, run.ID)
			}
		}
	}

	// 2. 检查缺失的前一日：若昨日区间无 DailyRun 记录，视为漏跑并补跑
	todayStart, _ := s.currentWindow()
	startTime := todayStart.AddDate(0, 0, -1)
	endTime := todayStart

	_, err = s.dailyRunModel.GetByDateRange(ctx, startTime, endTime)
	if err != nil && ent.IsNotFound(err) {
		logger.Infof("[Scheduler] 昨日无 DailyRun 记录，补跑: %s ~ %s", startTime.Format("2006-01-02"), endTime.Format("2006-01-02"))
		run, createErr := s.dailyRunModel.Create(ctx, startTime, endTime, dailyrun.StatusInProgress)
		if createErr != nil {
			logger.Errorf("[Scheduler] 创建 DailyRun 失败: %v", createErr)
		} else {
			if execErr := s.executeDigestForRange(ctx, startTime, endTime); execErr != nil {
				logger.Errorf("[Scheduler] 补跑 DailyRun 失败: %v", execErr)
				_ = s.dailyRunModel.MarkFailed(ctx, run.ID, execErr.Error())
			} else {
				_ = s.dailyRunModel.MarkCompleted(ctx, run.ID)
			}
		}
	}

	// 3. 恢复未完成的 Task
	s.recoverPendingTasks(ctx)

	logger.Infof("[Scheduler] 每日总结恢复完成")
}

// recoverPendingTasks 恢复未完成的 Task
func (s *Scheduler) recoverPendingTasks(ctx context.Context) {
	tasks, err := s.taskModel.GetPendingOrProcessingTasks(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成任务失败: %v", err)
		return
	}
	if len(tasks) == 0 {
		return
	}

	logger.Infof("[Scheduler] 找到 %d 个未完成的任务，开始恢复", len(tasks))
	cutoffTime := time.Now().In(locUTC).AddDate(0, 0, -7)

	for _, t := range tasks {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if t.StartTime.Before(cutoffTime) {
			logger.Warnf("[Scheduler] 跳过过期任务: chatID=%d, startTime=%s", t.ChatID, t.StartTime.Format("2006-01-02"))
			continue
		}
		guild := s.guildByName(t.Guild)
		if guild == nil {
			logger.Warnf("[Scheduler] 任务所属摘要组 %q 已不在配置中，跳过: chatID=%d", t.Guild, t.ChatID)
			continue
		}
		if err := s.taskModel.ResetTaskToPending(ctx, t.ID); err != nil {
			logger.Errorf("[Scheduler] 重置任务状态失败 (taskID=%d): %v", t.ID, err)
			continue
		}
		if err := s.taskModel.UpdateTaskStatus(ctx, t.ID, task.StatusProcessing, nil); err != nil {
			logger.Errorf("[Scheduler] 更新任务状态失败 (taskID=%d): %v", t.ID, err)
			continue
		}
		// 若已有待发送摘要（程序曾在发送阶段退出），只重试发送通知
		if t.SummaryContent != "" {
			logger.Infof("[Scheduler] 恢复任务仅重试发送通知: chatID=%d, taskID=%d", t.ChatID, t.ID)
			sent, sendErr := s.sendTaskNotification(ctx, guild, t.SummaryContent)
			if sendErr != nil {
				logger.Errorf("[Scheduler] 恢复发送通知失败 (chatID=%d): %v", t.ChatID, sendErr)
				_ = s.taskModel.MarkTaskFailed(ctx, t.ID, sendErr.Error())
				continue
			}
			if sent {
				_ = s.taskModel.ClearSummaryContent(ctx, t.ID)
			}
			_ = s.taskModel.MarkTaskCompleted(ctx, t.ID)
			continue
		}
		logger.Infof("[Scheduler] 恢复处理任务: chatID=%d, startTime=%s, endTime=%s", t.ChatID, t.StartTime.Format("2006-01-02"), t.EndTime.Format("2006-01-02"))
		if err := s.processTask(ctx, guild, t.ChatID, t.StartTime, t.EndTime, t.ID); err != nil {
			logger.Errorf("[Scheduler] 恢复处理任务失败 (chatID=%d): %v", t.ChatID, err)
			_ = s.taskModel.MarkTaskFailed(ctx, t.ID, err.Error())
			continue
		}
		_ = s.taskModel.MarkTaskCompleted(ctx, t.ID)
	}
}

// guildByName 按名称查找摘要组配置
func (s *Scheduler) guildByName(name string) *config.GuildConfig {
	for i := range s.config.Guilds {
		if s.config.Guilds[i].Name == name {
			return &s.config.Guilds[i]
		}
	}
	return nil
}

// runDailyDigest 执行每日总结任务（cron 触发）
func (s *Scheduler) runDailyDigest() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	startTime, endTime := s.currentWindow()
	logger.Infof("[Scheduler] 开始执行每日总结任务，区间: %s", startTime.Format("2006-01-02"))

	// 在处理前创建 DailyRun 记录，便于崩溃恢复
	run, err := s.dailyRunModel.GetOrCreate(ctx, startTime, endTime, dailyrun.StatusInProgress)
	if err != nil {
		logger.Errorf("[Scheduler] 获取或创建 DailyRun 失败: %v", err)
		return
	}
	// 若已存在且完成，跳过
	if run.Status == dailyrun.StatusCompleted {
		logger.Infof("[Scheduler] 当日 DailyRun 已完成，跳过")
		return
	}

	if err := s.executeDigestForRange(ctx, startTime, endTime); err != nil {
		logger.Errorf("[Scheduler] 每日总结执行失败: %v", err)
		_ = s.dailyRunModel.MarkFailed(ctx, run.ID, err.Error())
		return
	}
	_ = s.dailyRunModel.MarkCompleted(ctx, run.ID)
	logger.Infof("[Scheduler] 每日总结任务完成")
}

// executeDigestForRange 对指定日期区间执行完整总结流程（创建任务、处理、清理）
// 各摘要组/群聊之间相互独立，单个群聊失败不影响其余群聊
func (s *Scheduler) executeDigestForRange(ctx context.Context, startTime, endTime time.Time) error {
	successCount := 0
	failCount := 0

	type chatTask struct {
		guild  *config.GuildConfig
		record *ent.Task
	}

	// 1. 为每个摘要组的每个被监控群聊批量创建任务
	var tasksToProcess []chatTask
	for i := range s.config.Guilds {
		guild := &s.config.Guilds[i]
		for _, chatID := range guild.MonitoredChats {
			select {
			case <-ctx.Done():
				return fmt.Errorf("任务已取消")
			default:
			}
			taskRecord, err := s.taskModel.GetOrCreateTask(ctx, chatID, guild.Name, startTime, endTime, task.StatusPending)
			if err != nil {
				logger.Errorf("[Scheduler] 创建任务失败 (chatID=%d): %v", chatID, err)
				failCount++
				continue
			}
			if taskRecord.Status == task.StatusCompleted {
				successCount++
				continue
			}
			tasksToProcess = append(tasksToProcess, chatTask{guild: guild, record: taskRecord})
		}
	}

	// 2. 处理任务
	for _, ct := range tasksToProcess {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}
		if err := s.taskModel.UpdateTaskStatus(ctx, ct.record.ID, task.StatusProcessing, nil); err != nil {
			failCount++
			continue
		}
		if err := s.processTask(ctx, ct.guild, ct.record.ChatID, ct.record.StartTime, ct.record.EndTime, ct.record.ID); err != nil {
			_ = s.taskModel.MarkTaskFailed(ctx, ct.record.ID, err.Error())
			failCount++
			continue
		}
		if err := s.taskModel.MarkTaskCompleted(ctx, ct.record.ID); err == nil {
			successCount++
		}
	}

	logger.Infof("[Scheduler] 群聊处理完成: 成功 %d 个，失败 %d 个", successCount, failCount)

	select {
	case <-ctx.Done():
		return fmt.Errorf("任务已取消")
	default:
	}
	s.cleanupMessages(ctx)
	return nil
}

// retryPolicy 重试参数，未配置时使用默认值
func (s *Scheduler) retryPolicy() (int, time.Duration) {
	retryTimes := s.config.Summary.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 3
	}
	retryInterval := time.Duration(s.config.Summary.RetryInterval) * time.Second
	if retryInterval <= 0 {
		retryInterval = 60 * time.Second
	}
	return retryTimes, retryInterval
}

// generateDigestForTask 阶段一：生成摘要并持久化结果
// 内含重试循环，只重试请求级失败（消息源错误）；后端降级在引擎内完成
// 消息不足时返回 content=="" 且 err==nil 表示跳过通知
func (s *Scheduler) generateDigestForTask(ctx context.Context, chatID int64, startTime, endTime time.Time) (content string, err error) {
	startDate := startTime.Format("2006-01-02")
	endDate := endTime.AddDate(0, 0, -1).Format("2006-01-02")
	retryTimes, retryInterval := s.retryPolicy()

	var result *summarizer.SummaryResult
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("任务已取消")
		default:
		}

		logger.Debugf("[Scheduler] 群聊 %d: 尝试生成摘要 (第 %d/%d 次)", chatID, attempt, retryTimes)
		result, err = s.orchestrator.ProduceSummary(ctx, summarizer.SummaryRequest{
			ChatID:    chatID,
			StartTime: startTime,
			EndTime:   endTime,
		})
		if err == nil {
			break
		}

		logger.Warnf("[Scheduler] 群聊 %d: 摘要生成失败 (第 %d/%d 次): %v", chatID, attempt, retryTimes, err)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("任务已取消")
			case <-time.After(retryInterval):
			}
		}
	}

	if err != nil {
		return "", fmt.Errorf("摘要生成失败，已重试 %d 次: %w", retryTimes, err)
	}

	// 持久化摘要结果（含 insufficient_activity/failed 状态），便于查询历史
	if saveErr := s.saveSummary(ctx, chatID, startTime, endTime, result); saveErr != nil {
		logger.Warnf("[Scheduler] 群聊 %d: 保存摘要记录失败: %v，继续发送", chatID, saveErr)
	}

	if result.Status == summarizer.StatusInsufficientActivity {
		logger.Infof("[Scheduler] 群聊 %d: 区间内消息不足，跳过通知", chatID)
		return "", nil
	}

	return summarizer.FormatDigestForDisplay(result, "", startDate, endDate), nil
}

// saveSummary 将摘要结果写入 Summary 表
func (s *Scheduler) saveSummary(ctx context.Context, chatID int64, startTime, endTime time.Time, result *summarizer.SummaryResult) error {
	_, err := s.summaryModel.CreateOrUpdate(ctx, &model.SummaryData{
		ChatID:           chatID,
		StartTime:        startTime,
		EndTime:          endTime,
		Status:           summary.Status(result.Status),
		Backend:          result.Backend,
		Content:          result.Text,
		SegmentCount:     result.SegmentCount,
		ParticipantCount: result.ParticipantCount,
		GeneratedAt:      result.GeneratedAt,
	})
	return err
}

// sendTaskNotification 阶段二：发送通知。仅重试发送，不会重新生成摘要；通知失败不影响任务完成状态。
// 返回 (sent, err)：sent 表示是否发送成功，err 表示是否应中止（如 ctx 取消）。
func (s *Scheduler) sendTaskNotification(ctx context.Context, guild *config.GuildConfig, content string) (sent bool, err error) {
	_, retryInterval := s.retryPolicy()

	notifyRetryTimes := 2
	for attempt := 1; attempt <= notifyRetryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return false, fmt.Errorf("任务已取消")
		default:
		}

		notifyErr := s.notifier.NotifyGuild(ctx, guild, content)
		if notifyErr == nil {
			logger.Infof("[Scheduler] 摘要组 %s: 通知发送成功", guild.Name)
			return true, nil
		}
		logger.Warnf("[Scheduler] 摘要组 %s: 通知发送失败 (第 %d/%d 次): %v", guild.Name, attempt, notifyRetryTimes, notifyErr)
		if attempt < notifyRetryTimes {
			select {
			case <-ctx.Done():
				return false, fmt.Errorf("任务已取消")
			case <-time.After(retryInterval / 2):
			}
		}
	}

	logger.Errorf("[Scheduler] 摘要组 %s: 通知发送失败，已重试 %d 次", guild.Name, notifyRetryTimes)
	// 通知失败不影响任务完成状态，因为摘要已生成；返回 sent=false 以便不清除 summary_content，恢复时只重试发送
	return false, nil
}

// processTask 处理单个群聊任务：先生成摘要，再发送通知；通知重试仅重试发送，不重试生成。
// taskID > 0 时在发送前将摘要持久化到任务，程序在发送期间退出后恢复时只会重试发送；发送成功后清除。
func (s *Scheduler) processTask(ctx context.Context, guild *config.GuildConfig, chatID int64, startTime, endTime time.Time, taskID int) error {
	logger.Infof("[Scheduler] 处理群聊 %d (摘要组 %s)，区间: %s", chatID, guild.Name, startTime.Format("2006-01-02"))

	// 阶段一：生成摘要
	content, err := s.generateDigestForTask(ctx, chatID, startTime, endTime)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}

	// 发送前持久化摘要：之后无论首次发送还是重试时崩溃，重启后都只重试发送，不会重新生成摘要
	if taskID > 0 {
		if err := s.taskModel.SetSummaryContent(ctx, taskID, content); err != nil {
			logger.Warnf("[Scheduler] 保存摘要内容失败 (taskID=%d): %v，继续发送", taskID, err)
		}
	}

	// 阶段二：发送通知（仅重试发送，不重新生成摘要）
	sent, err := s.sendTaskNotification(ctx, guild, content)
	if err != nil {
		return err
	}
	if sent && taskID > 0 {
		_ = s.taskModel.ClearSummaryContent(ctx, taskID)
	}
	return nil
}

// cleanupMessages 执行消息清理
func (s *Scheduler) cleanupMessages(ctx context.Context) {
	cutoffDate := time.Now().In(locUTC).AddDate(0, 0, -s.config.Summary.RetentionDays-1)
	cutoffDate = time.Date(cutoffDate.Year(), cutoffDate.Month(), cutoffDate.Day(), 0, 0, 0, 0, locUTC)

	logger.Infof("[Scheduler] 开始清理 %s 之前的消息", cutoffDate.Format("2006-01-02"))
	deleted, err := s.messageModel.DeleteBefore(ctx, cutoffDate)
	if err != nil {
		logger.Errorf("[Scheduler] 清理消息失败: %v", err)
	} else {
		logger.Infof("[Scheduler] 已清理 %d 条消息", deleted)
	}
}
