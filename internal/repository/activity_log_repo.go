package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// ActivityLogRepository 活动日志数据访问接口（仅追加）
type ActivityLogRepository interface {
	Create(ctx context.Context, log *model.ActivityLog) error
	List(ctx context.Context, userID string, limit int) ([]model.ActivityLog, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

// NewActivityLogRepo 创建 ActivityLogRepository 实例
func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, log *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepo) List(ctx context.Context, userID string, limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	db := r.db.WithContext(ctx)
	if userID != "" {
		db = db.Where("user_id = ?", userID)
	}
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
