package services

import (
	"errors"
	"testing"

	"candyshop-http-service/models"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newTestDB(t), newTestConfig())
}

func seedCustomer(t *testing.T, s *UserService, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "Secret123",
		Email:    email,
		FullName: "测试用户",
		Role:     models.RoleCustomer,
		RoleID:   models.RoleIDCustomer,
		Status:   models.UserStatusActive,
	}
	mustCreate(t, s.DB, user)
	return user
}

func TestUpdateUserUniqueness(t *testing.T) {
	s := newUserService(t)
	seedCustomer(t, s, "alice", "alice@example.com")
	bob := seedCustomer(t, s, "bob", "bob@example.com")

	// 改成他人的用户名被拒绝
	if _, err := s.UpdateUser(bob.ID, map[string]interface{}{"username": "alice"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("重复用户名应被拒绝, got %v", err)
	}

	// 改成他人的邮箱被拒绝
	if _, err := s.UpdateUser(bob.ID, map[string]interface{}{"email": "alice@example.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("重复邮箱应被拒绝, got %v", err)
	}

	// 保持自己原值的更新不触发唯一性检查
	updated, err := s.UpdateUser(bob.ID, map[string]interface{}{"username": "bob", "address": "糖果街1号"})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Address != "糖果街1号" {
		t.Errorf("地址未更新: %q", updated.Address)
	}
}

func TestUpdateUserRoleSyncsRoleID(t *testing.T) {
	s := newUserService(t)
	user := seedCustomer(t, s, "alice", "alice@example.com")

	updated, err := s.UpdateUser(user.ID, map[string]interface{}{"role": models.RoleAdmin})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Role != models.RoleAdmin || updated.RoleID != models.RoleIDAdmin {
		t.Errorf("角色与角色ID必须同步: role=%s role_id=%d", updated.Role, updated.RoleID)
	}
}

func TestUpdateUserFullNameValidation(t *testing.T) {
	s := newUserService(t)
	user := seedCustomer(t, s, "alice", "alice@example.com")

	_, err := s.UpdateUser(user.ID, map[string]interface{}{"full_name": "  x  "})
	if _, ok := AsValidationError(err); !ok {
		t.Errorf("过短姓名应返回校验错误, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	s := newUserService(t)
	user := seedCustomer(t, s, "alice", "alice@example.com")

	if err := s.ChangePassword(user.ID, "wrong", "NewSecret1"); !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("旧密码错误应被拒绝, got %v", err)
	}

	if err := s.ChangePassword(user.ID, "Secret123", "weak"); err == nil {
		t.Error("弱密码应被拒绝")
	} else if _, ok := AsValidationError(err); !ok {
		t.Errorf("弱密码应返回校验错误, got %v", err)
	}

	if err := s.ChangePassword(user.ID, "Secret123", "NewSecret1"); err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}

	var stored models.User
	s.DB.First(&stored, user.ID)
	if stored.Password != "NewSecret1" {
		t.Errorf("密码未更新: %q", stored.Password)
	}
}

func TestDeleteUser(t *testing.T) {
	s := newUserService(t)
	user := seedCustomer(t, s, "alice", "alice@example.com")

	if err := s.DeleteUser(user.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if err := s.DeleteUser(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("重复删除应返回用户不存在, got %v", err)
	}
}

func TestGetAllUsersPagination(t *testing.T) {
	s := newUserService(t)
	for i := 0; i < 5; i++ {
		seedCustomer(t, s, "user"+string(rune('a'+i)), "user"+string(rune('a'+i))+"@example.com")
	}

	users, total, err := s.GetAllUsers(2, 2)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 5 {
		t.Errorf("总数错误: %d", total)
	}
	if len(users) != 2 {
		t.Errorf("第二页应有2条记录: %d", len(users))
	}
}
