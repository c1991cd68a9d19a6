package services

import (
	"errors"
	"testing"
	"time"

	"candyshop-http-service/models"
)

func newNotificationService(t *testing.T) *NotificationService {
	t.Helper()
	return NewNotificationService(newTestDB(t), newTestConfig())
}

func TestSendNotificationBroadcast(t *testing.T) {
	s := newNotificationService(t)

	n := &models.Notification{Title: "周年庆", Message: "全场八折", Type: "promotion"}
	if err := s.SendNotification(n, nil); err != nil {
		t.Fatalf("发送失败: %v", err)
	}
	if n.ID == "" {
		t.Error("应分配UUID")
	}
	if n.TargetUsers != models.NotificationTargetAll {
		t.Errorf("无目标列表应广播: %q", n.TargetUsers)
	}
	if n.SentAt.IsZero() {
		t.Error("发送时间未设置")
	}

	// 标题和内容必填
	if err := s.SendNotification(&models.Notification{Message: "x"}, nil); err == nil {
		t.Error("空标题应被拒绝")
	}
	if err := s.SendNotification(&models.Notification{Title: "x"}, nil); err == nil {
		t.Error("空内容应被拒绝")
	}
}

func TestGetNotificationsSince(t *testing.T) {
	s := newNotificationService(t)
	start := time.Now().Add(-time.Second)

	if err := s.SendNotification(&models.Notification{Title: "广播", Message: "所有人可见"}, nil); err != nil {
		t.Fatalf("发送失败: %v", err)
	}
	if err := s.SendNotification(&models.Notification{Title: "定向", Message: "只给一人"}, []string{"13800138000"}); err != nil {
		t.Fatalf("发送失败: %v", err)
	}

	// 不带手机号只能看到广播通知
	anon, err := s.GetNotificationsSince(start, "")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(anon) != 1 || anon[0].Title != "广播" {
		t.Errorf("匿名用户应只看到广播通知: %+v", anon)
	}

	// 目标用户能看到广播和定向通知
	targeted, err := s.GetNotificationsSince(start, "13800138000")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(targeted) != 2 {
		t.Errorf("目标用户应看到2条通知: %d", len(targeted))
	}

	// 非目标用户看不到定向通知
	other, err := s.GetNotificationsSince(start, "13900000000")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("非目标用户应只看到广播通知: %d", len(other))
	}

	// 时间截点之后没有新通知
	none, err := s.GetNotificationsSince(time.Now().Add(time.Minute), "13800138000")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("未来时间截点不应返回通知: %d", len(none))
	}
}

func TestDeleteNotification(t *testing.T) {
	s := newNotificationService(t)

	n := &models.Notification{Title: "临时", Message: "稍后删除"}
	if err := s.SendNotification(n, nil); err != nil {
		t.Fatalf("发送失败: %v", err)
	}

	if err := s.DeleteNotification(n.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if err := s.DeleteNotification(n.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("重复删除应返回通知不存在, got %v", err)
	}
}
