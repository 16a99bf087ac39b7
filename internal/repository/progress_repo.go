package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// ProgressRepository 每日进度数据访问接口
type ProgressRepository interface {
	Upsert(ctx context.Context, p *model.DailyProgress) error
	GetByDate(ctx context.Context, userID, date string) (*model.DailyProgress, error)
	ListRange(ctx context.Context, userID, from, to string) ([]model.DailyProgress, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.DailyProgress, error)
	ListRecentAll(ctx context.Context, limit int) ([]model.DailyProgress, error)
	CountActiveUsers(ctx context.Context, since time.Time) (int64, error)
}

type progressRepo struct {
	db *gorm.DB
}

// NewProgressRepo 创建 ProgressRepository 实例
func NewProgressRepo(db *gorm.DB) ProgressRepository {
	return &progressRepo{db: db}
}

// Upsert 按 (user_id, date) 冲突覆盖，同一天重复记录为更新
func (r *progressRepo) Upsert(ctx context.Context, p *model.DailyProgress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"work_hours", "leisure_hours", "sleep_hours",
				"tasks_completed", "tasks_total", "notes", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *progressRepo) GetByDate(ctx context.Context, userID, date string) (*model.DailyProgress, error) {
	var p model.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepo) ListRange(ctx context.Context, userID, from, to string) ([]model.DailyProgress, error) {
	var rows []model.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *progressRepo) ListRecent(ctx context.Context, userID string, limit int) ([]model.DailyProgress, error) {
	var rows []model.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ListRecentAll 全量最近进度（管理后台聚合统计用）
func (r *progressRepo) ListRecentAll(ctx context.Context, limit int) ([]model.DailyProgress, error) {
	var rows []model.DailyProgress
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountActiveUsers 统计自 since 起有进度记录的去重用户数
func (r *progressRepo) CountActiveUsers(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.DailyProgress{}).
		Where("date >= ?", since.Format("2006-01-02")).
		Distinct("user_id").
		Count(&n).Error
	return n, err
}
