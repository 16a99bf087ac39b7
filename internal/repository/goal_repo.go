package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// PeriodCount 按维度统计的目标完成情况
type PeriodCount struct {
	Period    model.GoalPeriod `gorm:"column:period"`
	Total     int              `gorm:"column:total"`
	Completed int              `gorm:"column:completed"`
}

// GoalRepository 目标数据访问接口
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	BulkInsert(ctx context.Context, goals []model.Goal) error
	GetByID(ctx context.Context, userID, id string) (*model.Goal, error)
	List(ctx context.Context, userID string, period model.GoalPeriod, status model.GoalStatus) ([]model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	CompleteAllInPeriod(ctx context.Context, userID string, period model.GoalPeriod, now time.Time) (int64, error)
	StatsByPeriod(ctx context.Context, userID string) ([]PeriodCount, error)
	CountAll(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type goalRepo struct {
	db *gorm.DB
}

// NewGoalRepo 创建 GoalRepository 实例
func NewGoalRepo(db *gorm.DB) GoalRepository {
	return &goalRepo{db: db}
}

func (r *goalRepo) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// BulkInsert 批量写入模板目标；与已有目标冲突（同用户同模板同维度同标题）时跳过，
// 避免重复生成覆盖用户已有的完成状态
func (r *goalRepo) BulkInsert(ctx context.Context, goals []model.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "template_id"}, {Name: "period"}, {Name: "title"},
			},
			DoNothing: true,
		}).
		Create(&goals).Error
}

func (r *goalRepo) GetByID(ctx context.Context, userID, id string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).
		Where("goal_id = ? AND user_id = ?", id, userID).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepo) List(ctx context.Context, userID string, period model.GoalPeriod, status model.GoalStatus) ([]model.Goal, error) {
	var goals []model.Goal
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if period != "" {
		db = db.Where("period = ?", period)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	err := db.Order("created_at ASC").Find(&goals).Error
	return goals, err
}

func (r *goalRepo) Update(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *goalRepo) CompleteAllInPeriod(ctx context.Context, userID string, period model.GoalPeriod, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Goal{}).
		Where("user_id = ? AND period = ? AND status <> ?", userID, period, model.GoalCompleted).
		Updates(map[string]interface{}{
			"status":       model.GoalCompleted,
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

func (r *goalRepo) StatsByPeriod(ctx context.Context, userID string) ([]PeriodCount, error) {
	var stats []PeriodCount
	err := r.db.WithContext(ctx).
		Model(&model.Goal{}).
		Select("period, COUNT(*) AS total, COUNT(*) FILTER (WHERE completed) AS completed").
		Where("user_id = ?", userID).
		Group("period").
		Scan(&stats).Error
	return stats, err
}

func (r *goalRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Goal{}).Count(&n).Error
	return n, err
}

func (r *goalRepo) CountCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Goal{}).
		Where("completed = ?", true).
		Count(&n).Error
	return n, err
}
