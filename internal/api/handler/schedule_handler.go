package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/service"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/response"
)

// ScheduleHandler 日程模块 HTTP 处理器
type ScheduleHandler struct {
	schedSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(schedSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedSvc: schedSvc}
}

// GetWeek 一周日程
// GET /api/v1/schedule
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	week, err := h.schedSvc.GetWeek(c.Request.Context(), userID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, week)
}

// GetDay 单日日程（含均衡指标）
// GET /api/v1/schedule/:day
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, ok := mustGetDayOfWeek(c)
	if !ok {
		return
	}

	resp, err := h.schedSvc.GetDay(c.Request.Context(), userID, day)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// SaveBlock 新增或覆盖时间块
// POST /api/v1/schedule/:day/blocks
func (h *ScheduleHandler) SaveBlock(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, ok := mustGetDayOfWeek(c)
	if !ok {
		return
	}

	var req dto.SaveBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.schedSvc.SaveBlock(c.Request.Context(), userID, day, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// DeleteBlock 删除时间块（目标不存在时无操作）
// DELETE /api/v1/schedule/:day/blocks/:block_id
func (h *ScheduleHandler) DeleteBlock(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, ok := mustGetDayOfWeek(c)
	if !ok {
		return
	}

	resp, err := h.schedSvc.DeleteBlock(c.Request.Context(), userID, day, c.Param("block_id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// DuplicateBlock 复制时间块
// POST /api/v1/schedule/:day/blocks/:block_id/duplicate
func (h *ScheduleHandler) DuplicateBlock(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, ok := mustGetDayOfWeek(c)
	if !ok {
		return
	}

	resp, err := h.schedSvc.DuplicateBlock(c.Request.Context(), userID, day, c.Param("block_id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// ReorderBlocks 手动排序（整体替换顺序）
// PUT /api/v1/schedule/:day/blocks/order
func (h *ScheduleHandler) ReorderBlocks(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	day, ok := mustGetDayOfWeek(c)
	if !ok {
		return
	}

	var req dto.ReorderBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	resp, err := h.schedSvc.ReorderBlocks(c.Request.Context(), userID, day, req.Blocks)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDayNotFound):
		response.NotFound(c, 13001, "指定的日程日不存在，请先选择一个模板")
	case errors.Is(err, service.ErrBlockNotFound):
		response.NotFound(c, 13002, "时间块不存在")
	case errors.Is(err, model.ErrInvalidClock):
		response.BadRequest(c, 13003, "时间格式无效，应为 HH:MM")
	case errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, 13004, "时间块分类无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
