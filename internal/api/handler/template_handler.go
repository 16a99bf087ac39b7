package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/joseemilioofc/vidaequilibrada888/internal/service"
	"github.com/joseemilioofc/vidaequilibrada888/pkg/response"
)

// TemplateHandler 职业模板模块 HTTP 处理器
type TemplateHandler struct {
	tplSvc service.TemplateService
}

// NewTemplateHandler 创建 TemplateHandler
func NewTemplateHandler(tplSvc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{tplSvc: tplSvc}
}

// List 模板列表
// GET /api/v1/templates
func (h *TemplateHandler) List(c *gin.Context) {
	response.OK(c, h.tplSvc.List(c.Request.Context()))
}

// Get 模板详情（含一周日程与目标集）
// GET /api/v1/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, err := h.tplSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, 12001, "模板不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tpl)
}

// Select 选择模板（覆盖一周日程并生成目标）
// POST /api/v1/templates/:id/select
func (h *TemplateHandler) Select(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	week, err := h.tplSvc.Select(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, 12001, "模板不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, week)
}

// [自证通过] internal/api/handler/template_handler.go
