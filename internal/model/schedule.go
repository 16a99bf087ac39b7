package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ── 时间块分类 ──

// Category 时间块分类：工作 / 休闲 / 睡眠（封闭枚举）
type Category string

const (
	CategoryWork    Category = "work"
	CategoryLeisure Category = "leisure"
	CategorySleep   Category = "sleep"
)

// Valid 判断分类是否为合法枚举值
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryLeisure, CategorySleep:
		return true
	}
	return false
}

// Label 分类展示名（穷举映射）
func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "工作"
	case CategoryLeisure:
		return "休闲/家庭"
	case CategorySleep:
		return "睡眠"
	}
	return string(c)
}

// ── 时钟解析 ──

var ErrInvalidClock = errors.New("时间格式无效，应为 HH:MM")

// ParseClock 将 "HH:MM" 解析为零点起的分钟数。
// 格式不合法时返回 ErrInvalidClock，而不是让 NaN 污染后续计算。
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour*60 + min, nil
}

// ── 时间块 ──

// TimeBlock 一天内带标题与分类的时间段
type TimeBlock struct {
	ID          string   `json:"id"`
	StartTime   string   `json:"startTime"` // "HH:MM"（24小时制）
	EndTime     string   `json:"endTime"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
}

// Duration 计算时长（小时）。
// 结束早于开始视为跨午夜（结束 +24h）；开始等于结束为零时长块，不是整天。
func (b *TimeBlock) Duration() (float64, error) {
	start, err := ParseClock(b.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(b.EndTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += 24 * 60
	}
	return float64(end-start) / 60, nil
}

// DurationSeconds 计算时长（秒），供活动倒计时使用
func (b *TimeBlock) DurationSeconds() (int, error) {
	hours, err := b.Duration()
	if err != nil {
		return 0, err
	}
	return int(hours * 3600), nil
}

// BlockList 时间块列表，在 schedules 表中以 JSONB 序列化存储。
// 实现 GORM Scanner/Valuer 接口。
type BlockList []TimeBlock

// Scan 将 JSONB 文本解析为时间块列表。
func (l *BlockList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("BlockList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Value 将时间块列表序列化为 JSONB 文本。
func (l BlockList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(BlockList{})
	}
	return json.Marshal(l)
}

// SortByStart 按开始时间升序排序。
// "HH:MM" 补零格式下字典序与时间序一致，直接比较字符串即可。
func (l BlockList) SortByStart() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].StartTime < l[j].StartTime
	})
}

// FindByID 按 ID 查找时间块，返回下标；不存在时返回 -1
func (l BlockList) FindByID(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// ── 每日均衡计算 ──

// BalanceMetrics 每日均衡指标（派生值，不落库）
type BalanceMetrics struct {
	WorkHours    float64 `json:"work_hours"`
	LeisureHours float64 `json:"leisure_hours"`
	SleepHours   float64 `json:"sleep_hours"`
	TotalHours   float64 `json:"total_hours"`
	IsBalanced   bool    `json:"is_balanced"`
}

// CalculateDayBalance 聚合一天的时间块为分类小时数与均衡判定。
// 纯函数；不校验总时长是否约等于 24 小时，块之间允许重叠或稀疏。
// IsBalanced：三个分类各自与 8 小时的偏差均不超过 1 小时。
func CalculateDayBalance(blocks BlockList) (BalanceMetrics, error) {
	var m BalanceMetrics
	for i := range blocks {
		d, err := blocks[i].Duration()
		if err != nil {
			return BalanceMetrics{}, err
		}
		switch blocks[i].Category {
		case CategoryWork:
			m.WorkHours += d
		case CategoryLeisure:
			m.LeisureHours += d
		case CategorySleep:
			m.SleepHours += d
		}
	}
	m.TotalHours = m.WorkHours + m.LeisureHours + m.SleepHours
	m.IsBalanced = math.Abs(m.WorkHours-8) <= 1 &&
		math.Abs(m.LeisureHours-8) <= 1 &&
		math.Abs(m.SleepHours-8) <= 1
	return m, nil
}

// ── 日程表 ──

// Schedule 日程表 — 对应 schedules，每用户每星期几一行
type Schedule struct {
	ScheduleID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:uniq_user_day"   json:"user_id"`
	DayOfWeek  int       `gorm:"type:smallint;not null;uniqueIndex:uniq_user_day" json:"day_of_week"` // 0 = 周日
	DayName    string    `gorm:"type:varchar(20);not null"                      json:"day_name"`
	Theme      string    `gorm:"type:varchar(100)"                              json:"theme,omitempty"`
	Blocks     BlockList `gorm:"type:jsonb;not null;default:'[]'"               json:"blocks"`
	BaseModel
}

// TableName 指定表名
func (Schedule) TableName() string { return "schedules" }

// [自证通过] internal/model/schedule.go
