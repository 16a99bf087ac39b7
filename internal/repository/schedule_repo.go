package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// ScheduleRepository 日程数据访问接口
// 每用户每星期几一行，时间块整列以 JSONB 覆盖写入（行级 last-write-wins）
type ScheduleRepository interface {
	GetDay(ctx context.Context, userID string, dayOfWeek int) (*model.Schedule, error)
	GetWeek(ctx context.Context, userID string) ([]model.Schedule, error)
	UpsertDay(ctx context.Context, schedule *model.Schedule) error
	ReplaceWeek(ctx context.Context, userID string, days []model.Schedule) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo 创建 ScheduleRepository 实例
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) GetDay(ctx context.Context, userID string, dayOfWeek int) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_of_week = ?", userID, dayOfWeek).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) GetWeek(ctx context.Context, userID string) ([]model.Schedule, error) {
	var days []model.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week ASC").
		Find(&days).Error
	return days, err
}

func (r *scheduleRepo) UpsertDay(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"day_name", "theme", "blocks", "updated_at"}),
		}).
		Create(schedule).Error
}

// ReplaceWeek 以事务整体替换用户的一周日程（选择模板时使用）
func (r *scheduleRepo) ReplaceWeek(ctx context.Context, userID string, days []model.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Schedule{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}
