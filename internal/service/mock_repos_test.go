package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
	"github.com/joseemilioofc/vidaequilibrada888/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, search string, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if search != "" {
			name := ""
			if u.FullName != nil {
				name = *u.FullName
			}
			if !strings.Contains(name, search) && !strings.Contains(u.Email, search) {
				continue
			}
		}
		all = append(all, *u)
	}
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	days map[string]*model.Schedule // key: "user:dow"
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{days: make(map[string]*model.Schedule)}
}

func dayKey(userID string, dow int) string {
	return fmt.Sprintf("%s:%d", userID, dow)
}

func (m *mockScheduleRepo) GetDay(_ context.Context, userID string, dayOfWeek int) (*model.Schedule, error) {
	if d, ok := m.days[dayKey(userID, dayOfWeek)]; ok {
		cp := *d
		cp.Blocks = append(model.BlockList{}, d.Blocks...)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetWeek(_ context.Context, userID string) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, d := range m.days {
		if d.UserID == userID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DayOfWeek < result[j].DayOfWeek })
	return result, nil
}

func (m *mockScheduleRepo) UpsertDay(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = "sched-" + dayKey(schedule.UserID, schedule.DayOfWeek)
	}
	cp := *schedule
	m.days[dayKey(schedule.UserID, schedule.DayOfWeek)] = &cp
	return nil
}

func (m *mockScheduleRepo) ReplaceWeek(_ context.Context, userID string, days []model.Schedule) error {
	for key, d := range m.days {
		if d.UserID == userID {
			delete(m.days, key)
		}
	}
	for i := range days {
		if err := m.UpsertDay(nil, &days[i]); err != nil {
			return err
		}
	}
	return nil
}

// ── Mock GoalRepository ──

type mockGoalRepo struct {
	goals map[string]*model.Goal
	seq   int
}

func newMockGoalRepo() *mockGoalRepo {
	return &mockGoalRepo{goals: make(map[string]*model.Goal)}
}

func (m *mockGoalRepo) Create(_ context.Context, goal *model.Goal) error {
	if goal.GoalID == "" {
		m.seq++
		goal.GoalID = fmt.Sprintf("goal-%d", m.seq)
	}
	goal.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	m.goals[goal.GoalID] = goal
	return nil
}

// BulkInsert 模拟 (user_id, template_id, period, title) 唯一键冲突跳过
func (m *mockGoalRepo) BulkInsert(_ context.Context, goals []model.Goal) error {
	for i := range goals {
		g := goals[i]
		if m.exists(&g) {
			continue
		}
		gCopy := g
		if err := m.Create(nil, &gCopy); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockGoalRepo) exists(g *model.Goal) bool {
	for _, have := range m.goals {
		if have.UserID == g.UserID && have.Period == g.Period && have.Title == g.Title &&
			strPtrEq(have.TemplateID, g.TemplateID) {
			return true
		}
	}
	return false
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m *mockGoalRepo) GetByID(_ context.Context, userID, id string) (*model.Goal, error) {
	if g, ok := m.goals[id]; ok && g.UserID == userID {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGoalRepo) List(_ context.Context, userID string, period model.GoalPeriod, status model.GoalStatus) ([]model.Goal, error) {
	var result []model.Goal
	for _, g := range m.goals {
		if g.UserID != userID {
			continue
		}
		if period != "" && g.Period != period {
			continue
		}
		if status != "" && g.Status != status {
			continue
		}
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *mockGoalRepo) Update(_ context.Context, goal *model.Goal) error {
	m.goals[goal.GoalID] = goal
	return nil
}

// goalsFor 测试辅助：某用户的全部目标
func (m *mockGoalRepo) goalsFor(userID string) []model.Goal {
	result, _ := m.List(nil, userID, "", "")
	return result
}

func (m *mockGoalRepo) CompleteAllInPeriod(_ context.Context, userID string, period model.GoalPeriod, now time.Time) (int64, error) {
	var n int64
	for _, g := range m.goals {
		if g.UserID == userID && g.Period == period && g.Status != model.GoalCompleted {
			g.Status = model.GoalCompleted
			g.Completed = true
			t := now
			g.CompletedAt = &t
			n++
		}
	}
	return n, nil
}

func (m *mockGoalRepo) StatsByPeriod(_ context.Context, userID string) ([]repository.PeriodCount, error) {
	byPeriod := make(map[model.GoalPeriod]*repository.PeriodCount)
	for _, g := range m.goals {
		if g.UserID != userID {
			continue
		}
		c, ok := byPeriod[g.Period]
		if !ok {
			c = &repository.PeriodCount{Period: g.Period}
			byPeriod[g.Period] = c
		}
		c.Total++
		if g.Completed {
			c.Completed++
		}
	}
	var result []repository.PeriodCount
	for _, c := range byPeriod {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockGoalRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.goals)), nil
}

func (m *mockGoalRepo) CountCompleted(_ context.Context) (int64, error) {
	var n int64
	for _, g := range m.goals {
		if g.Completed {
			n++
		}
	}
	return n, nil
}

// ── Mock ProgressRepository ──

type mockProgressRepo struct {
	rows map[string]*model.DailyProgress // key: "user:date"
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{rows: make(map[string]*model.DailyProgress)}
}

func (m *mockProgressRepo) Upsert(_ context.Context, p *model.DailyProgress) error {
	if p.ProgressID == "" {
		p.ProgressID = "prog-" + p.UserID + ":" + p.Date
	}
	cp := *p
	m.rows[p.UserID+":"+p.Date] = &cp
	return nil
}

func (m *mockProgressRepo) GetByDate(_ context.Context, userID, date string) (*model.DailyProgress, error) {
	if p, ok := m.rows[userID+":"+date]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgressRepo) ListRange(_ context.Context, userID, from, to string) ([]model.DailyProgress, error) {
	var result []model.DailyProgress
	for _, p := range m.rows {
		if p.UserID == userID && p.Date >= from && p.Date <= to {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockProgressRepo) ListRecent(_ context.Context, userID string, limit int) ([]model.DailyProgress, error) {
	var result []model.DailyProgress
	for _, p := range m.rows {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockProgressRepo) ListRecentAll(_ context.Context, limit int) ([]model.DailyProgress, error) {
	var result []model.DailyProgress
	for _, p := range m.rows {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockProgressRepo) CountActiveUsers(_ context.Context, since time.Time) (int64, error) {
	cutoff := since.Format("2006-01-02")
	seen := make(map[string]bool)
	for _, p := range m.rows {
		if p.Date >= cutoff {
			seen[p.UserID] = true
		}
	}
	return int64(len(seen)), nil
}

// ── Mock ActivityLogRepository ──

type mockActivityLogRepo struct {
	logs []model.ActivityLog
}

func newMockActivityLogRepo() *mockActivityLogRepo {
	return &mockActivityLogRepo{}
}

func (m *mockActivityLogRepo) Create(_ context.Context, log *model.ActivityLog) error {
	if log.LogID == "" {
		log.LogID = fmt.Sprintf("log-%d", len(m.logs)+1)
	}
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockActivityLogRepo) List(_ context.Context, userID string, limit int) ([]model.ActivityLog, error) {
	var result []model.ActivityLog
	for i := len(m.logs) - 1; i >= 0 && len(result) < limit; i-- {
		if userID == "" || m.logs[i].UserID == userID {
			result = append(result, m.logs[i])
		}
	}
	return result, nil
}

// actionsFor 测试辅助：某用户的全部动作
func (m *mockActivityLogRepo) actionsFor(userID string) []string {
	var actions []string
	for _, l := range m.logs {
		if l.UserID == userID {
			actions = append(actions, l.Action)
		}
	}
	return actions
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	items []model.Notification
	seq   int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.seq++
	if n.NotificationID == "" {
		n.NotificationID = fmt.Sprintf("notif-%d", m.seq)
	}
	n.CreatedAt = time.Now()
	m.items = append(m.items, *n)
	return nil
}

func (m *mockNotificationRepo) List(_ context.Context, userID string, unreadOnly bool, limit int) ([]model.Notification, error) {
	var result []model.Notification
	for i := len(m.items) - 1; i >= 0 && len(result) < limit; i-- {
		n := m.items[i]
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, userID, id string) (int64, error) {
	for i := range m.items {
		if m.items[i].NotificationID == id && m.items[i].UserID == userID {
			m.items[i].Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for i := range m.items {
		if m.items[i].UserID == userID {
			m.items[i].Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, userID, id string) (int64, error) {
	for i := range m.items {
		if m.items[i].NotificationID == id && m.items[i].UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// forUser 测试辅助：某用户的全部通知
func (m *mockNotificationRepo) forUser(userID string) []model.Notification {
	var result []model.Notification
	for _, n := range m.items {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

// ── 聚合辅助 ──

type mockRepos struct {
	user         *mockUserRepo
	schedule     *mockScheduleRepo
	goal         *mockGoalRepo
	progress     *mockProgressRepo
	activityLog  *mockActivityLogRepo
	notification *mockNotificationRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		user:         newMockUserRepo(),
		schedule:     newMockScheduleRepo(),
		goal:         newMockGoalRepo(),
		progress:     newMockProgressRepo(),
		activityLog:  newMockActivityLogRepo(),
		notification: newMockNotificationRepo(),
	}
	repo := &repository.Repository{
		User:         m.user,
		Schedule:     m.schedule,
		Goal:         m.goal,
		Progress:     m.progress,
		ActivityLog:  m.activityLog,
		Notification: m.notification,
	}
	return repo, m
}

// [自证通过] internal/service/mock_repos_test.go
