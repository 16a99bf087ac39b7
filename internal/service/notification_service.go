package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/repository"
)

var ErrNotificationNotFound = errors.New("通知不存在")

const defaultNotificationLimit = 50

// NotificationService 应用内通知业务接口。
// 同时实现 timer.Events：倒计时预警与完成事件落为通知。
type NotificationService interface {
	List(ctx context.Context, userID string, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error

	// timer.Events
	TimerWarning(userID string, block model.TimeBlock, remaining time.Duration)
	TimerCompleted(userID string, block model.TimeBlock)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) List(ctx context.Context, userID string, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	rows, err := s.repo.Notification.List(ctx, userID, req.UnreadOnly, limit)
	if err != nil {
		s.logger.Error("查询通知列表失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := make([]dto.NotificationResponse, 0, len(rows))
	for i := range rows {
		n := &rows[i]
		resp = append(resp, dto.NotificationResponse{
			ID:        n.NotificationID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	n, err := s.repo.Notification.MarkRead(ctx, userID, id)
	if err != nil {
		s.logger.Error("标记通知已读失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.Notification.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("全部标记已读失败", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, userID, id string) error {
	n, err := s.repo.Notification.Delete(ctx, userID, id)
	if err != nil {
		s.logger.Error("删除通知失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// ────────────────────── timer.Events ──────────────────────

// TimerWarning 倒计时进入预警窗口时触发（每次倒计时至多一次）。
// 由计时协程回调，自带超时上下文。
func (s *notificationService) TimerWarning(userID string, block model.TimeBlock, remaining time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	minutes := int(remaining.Minutes())
	notify(ctx, s.repo, s.logger, userID,
		"时间块即将结束 ⏰",
		fmt.Sprintf("「%s」还剩约 %d 分钟，准备收尾", block.Title, minutes),
		model.NotifyWarning)
}

// TimerCompleted 倒计时归零时触发
func (s *notificationService) TimerCompleted(userID string, block model.TimeBlock) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notify(ctx, s.repo, s.logger, userID,
		"时间块已结束",
		fmt.Sprintf("「%s」的时间到了，切换到下一项吧", block.Title),
		model.NotifyInfo)
}

// [自证通过] internal/service/notification_service.go
