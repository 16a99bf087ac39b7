package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

func setupTestScheduleService() (ScheduleService, *mockRepos) {
	repo, mocks := newMockRepos()
	svc := NewScheduleService(repo, zap.NewNop())

	// 预置 u1 周一的一天：睡眠 + 上午工作
	mocks.schedule.days[dayKey("u1", 1)] = &model.Schedule{
		ScheduleID: "sched-u1-1",
		UserID:     "u1",
		DayOfWeek:  1,
		DayName:    "周一",
		Blocks: model.BlockList{
			{ID: "b-sleep", StartTime: "00:00", EndTime: "08:00", Title: "睡眠", Category: model.CategorySleep},
			{ID: "b-work", StartTime: "08:00", EndTime: "12:00", Title: "上午工作", Category: model.CategoryWork},
		},
	}
	return svc, mocks
}

func TestSaveBlockAppendsAndSorts(t *testing.T) {
	svc, _ := setupTestScheduleService()

	resp, err := svc.SaveBlock(context.Background(), "u1", 1, &dto.SaveBlockRequest{
		StartTime: "05:30", EndTime: "06:00", Title: "晨跑", Category: "leisure",
	})
	if err != nil {
		t.Fatalf("SaveBlock 报错: %v", err)
	}
	if len(resp.Blocks) != 3 {
		t.Fatalf("块数 = %d, 期望 3", len(resp.Blocks))
	}

	// 新块按开始时间插到中间
	if resp.Blocks[1].Title != "晨跑" {
		t.Errorf("排序后第 2 块应为晨跑, 实际 %s", resp.Blocks[1].Title)
	}
	if resp.Blocks[1].ID == "" {
		t.Error("新块应生成非空 ID")
	}
}

func TestSaveBlockReplacesByID(t *testing.T) {
	svc, mocks := setupTestScheduleService()

	resp, err := svc.SaveBlock(context.Background(), "u1", 1, &dto.SaveBlockRequest{
		ID: "b-work", StartTime: "08:00", EndTime: "12:30", Title: "深度工作", Category: "work",
	})
	if err != nil {
		t.Fatalf("SaveBlock 报错: %v", err)
	}
	if len(resp.Blocks) != 2 {
		t.Fatalf("同 ID 覆盖不应增加块数, 实际 %d", len(resp.Blocks))
	}

	idx := resp.Blocks.FindByID("b-work")
	if idx < 0 || resp.Blocks[idx].Title != "深度工作" || resp.Blocks[idx].EndTime != "12:30" {
		t.Errorf("覆盖写入未生效: %+v", resp.Blocks)
	}

	// 写回持久层
	saved := mocks.schedule.days[dayKey("u1", 1)]
	if saved.Blocks.FindByID("b-work") < 0 {
		t.Error("覆盖结果未落库")
	}
}

func TestSaveBlockInvalidInput(t *testing.T) {
	svc, _ := setupTestScheduleService()

	_, err := svc.SaveBlock(context.Background(), "u1", 1, &dto.SaveBlockRequest{
		StartTime: "8:00", EndTime: "12:00", Title: "x", Category: "work",
	})
	if !errors.Is(err, model.ErrInvalidClock) {
		t.Errorf("非法时间应报 ErrInvalidClock, 实际: %v", err)
	}

	_, err = svc.SaveBlock(context.Background(), "u1", 1, &dto.SaveBlockRequest{
		StartTime: "08:00", EndTime: "12:00", Title: "x", Category: "study",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("非法分类应报 ErrInvalidCategory, 实际: %v", err)
	}
}

func TestSaveBlockDayNotFound(t *testing.T) {
	svc, _ := setupTestScheduleService()

	_, err := svc.SaveBlock(context.Background(), "u1", 3, &dto.SaveBlockRequest{
		StartTime: "08:00", EndTime: "12:00", Title: "x", Category: "work",
	})
	if !errors.Is(err, ErrDayNotFound) {
		t.Errorf("缺失的日程日应报 ErrDayNotFound, 实际: %v", err)
	}
}

func TestDeleteBlockRemoves(t *testing.T) {
	svc, _ := setupTestScheduleService()

	resp, err := svc.DeleteBlock(context.Background(), "u1", 1, "b-work")
	if err != nil {
		t.Fatalf("DeleteBlock 报错: %v", err)
	}
	if len(resp.Blocks) != 1 {
		t.Fatalf("删除后块数 = %d, 期望 1", len(resp.Blocks))
	}
	if resp.Blocks.FindByID("b-work") != -1 {
		t.Error("被删块仍存在")
	}
}

func TestDeleteBlockMissingIsNoop(t *testing.T) {
	svc, mocks := setupTestScheduleService()

	resp, err := svc.DeleteBlock(context.Background(), "u1", 1, "no-such-block")
	if err != nil {
		t.Fatalf("删除不存在的块不应报错: %v", err)
	}
	if len(resp.Blocks) != 2 {
		t.Errorf("无操作删除不应改变块数, 实际 %d", len(resp.Blocks))
	}
	// 无操作不应产生日程变更活动日志
	if got := mocks.activityLog.actionsFor("u1"); len(got) != 0 {
		t.Errorf("无操作删除不应记录活动: %v", got)
	}
}

func TestDuplicateBlock(t *testing.T) {
	svc, _ := setupTestScheduleService()

	resp, err := svc.DuplicateBlock(context.Background(), "u1", 1, "b-work")
	if err != nil {
		t.Fatalf("DuplicateBlock 报错: %v", err)
	}
	if len(resp.Blocks) != 3 {
		t.Fatalf("复制后块数 = %d, 期望 3", len(resp.Blocks))
	}

	var dup *model.TimeBlock
	for i := range resp.Blocks {
		if resp.Blocks[i].Title == "上午工作（副本）" {
			dup = &resp.Blocks[i]
		}
	}
	if dup == nil {
		t.Fatal("未找到副本块")
	}
	if dup.ID == "b-work" || dup.ID == "" {
		t.Errorf("副本应有独立的新 ID, 实际 %q", dup.ID)
	}
	if dup.StartTime != "08:00" || dup.EndTime != "12:00" || dup.Category != model.CategoryWork {
		t.Errorf("副本其余字段应与原块一致: %+v", dup)
	}
}

func TestDuplicateBlockMissing(t *testing.T) {
	svc, _ := setupTestScheduleService()

	_, err := svc.DuplicateBlock(context.Background(), "u1", 1, "no-such-block")
	if !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("复制不存在的块应报 ErrBlockNotFound, 实际: %v", err)
	}
}

func TestReorderBlocksWholesale(t *testing.T) {
	svc, _ := setupTestScheduleService()

	// 手动指定与时间序相反的顺序，服务端不得自动重排
	reordered := []model.TimeBlock{
		{ID: "b-work", StartTime: "08:00", EndTime: "12:00", Title: "上午工作", Category: model.CategoryWork},
		{ID: "b-sleep", StartTime: "00:00", EndTime: "08:00", Title: "睡眠", Category: model.CategorySleep},
	}
	resp, err := svc.ReorderBlocks(context.Background(), "u1", 1, reordered)
	if err != nil {
		t.Fatalf("ReorderBlocks 报错: %v", err)
	}
	if resp.Blocks[0].ID != "b-work" || resp.Blocks[1].ID != "b-sleep" {
		t.Errorf("手动顺序被破坏: %s, %s", resp.Blocks[0].ID, resp.Blocks[1].ID)
	}
}

func TestGetDayComputesBalance(t *testing.T) {
	svc, _ := setupTestScheduleService()

	resp, err := svc.GetDay(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("GetDay 报错: %v", err)
	}
	if resp.Balance.SleepHours != 8 || resp.Balance.WorkHours != 4 {
		t.Errorf("均衡指标不对: %+v", resp.Balance)
	}
	if resp.Balance.IsBalanced {
		t.Error("8 睡 4 工 0 闲不应判定为均衡")
	}
}

func TestGetDayNotFound(t *testing.T) {
	svc, _ := setupTestScheduleService()

	if _, err := svc.GetDay(context.Background(), "u1", 6); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("应报 ErrDayNotFound, 实际: %v", err)
	}
}

func TestGetBlock(t *testing.T) {
	svc, _ := setupTestScheduleService()

	block, err := svc.GetBlock(context.Background(), "u1", 1, "b-work")
	if err != nil {
		t.Fatalf("GetBlock 报错: %v", err)
	}
	if block.Title != "上午工作" {
		t.Errorf("块标题 = %s, 期望 上午工作", block.Title)
	}

	if _, err := svc.GetBlock(context.Background(), "u1", 1, "nope"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("应报 ErrBlockNotFound, 实际: %v", err)
	}
}

func TestSaveBlockRecordsActivity(t *testing.T) {
	svc, mocks := setupTestScheduleService()

	_, err := svc.SaveBlock(context.Background(), "u1", 1, &dto.SaveBlockRequest{
		StartTime: "13:00", EndTime: "14:00", Title: "午休", Category: "leisure",
	})
	if err != nil {
		t.Fatalf("SaveBlock 报错: %v", err)
	}

	actions := mocks.activityLog.actionsFor("u1")
	if len(actions) != 1 || actions[0] != model.ActionUpdatedSchedule {
		t.Errorf("应记录一条 updated_schedule 活动, 实际 %v", actions)
	}
}

// [自证通过] internal/service/schedule_service_test.go
