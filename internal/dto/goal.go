package dto

// ── 目标模块 DTO ──

// CreateGoalRequest 创建自定义目标请求
type CreateGoalRequest struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty"`
	Period      string `json:"period"      binding:"required,oneof=daily weekly monthly quarterly biannual yearly fiveYear"`
}

// UpdateGoalStatusRequest 更新目标状态请求（三态）
type UpdateGoalStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

// GoalListRequest 目标列表查询参数
type GoalListRequest struct {
	Period string `form:"period" binding:"omitempty,oneof=daily weekly monthly quarterly biannual yearly fiveYear"`
	Status string `form:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

// GoalResponse 目标响应
type GoalResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Period      string  `json:"period"`
	PeriodLabel string  `json:"period_label"`
	Status      string  `json:"status"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// GoalSetResponse 按维度分组的目标集
type GoalSetResponse struct {
	Daily     []GoalResponse `json:"daily"`
	Weekly    []GoalResponse `json:"weekly"`
	Monthly   []GoalResponse `json:"monthly"`
	Quarterly []GoalResponse `json:"quarterly"`
	Biannual  []GoalResponse `json:"biannual"`
	Yearly    []GoalResponse `json:"yearly"`
	FiveYear  []GoalResponse `json:"fiveYear"`
}

// GoalPeriodStats 单个维度的完成统计
type GoalPeriodStats struct {
	Period    string `json:"period"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// [自证通过] internal/dto/goal.go
