package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"candyshop-http-service/models"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := newTestConfig()
	return NewAuthService(newTestDB(t), cfg, NewEmailService(cfg))
}

func seedUser(t *testing.T, s *AuthService, username, password, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: password,
		Email:    email,
		FullName: "测试用户",
		Role:     models.RoleCustomer,
		RoleID:   models.RoleIDCustomer,
		Status:   models.UserStatusActive,
	}
	mustCreate(t, s.DB, user)
	return user
}

func TestLoginExactMatch(t *testing.T) {
	s := newAuthService(t)
	seedUser(t, s, "alice", "Secret123", "alice@example.com")

	user, err := s.Login("alice", "Secret123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("用户名不匹配: %s", user.Username)
	}

	// 密码逐字节比较，大小写不同视为不同密码
	if _, err := s.Login("alice", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("错误密码应返回凭证错误, got %v", err)
	}

	// 未知用户与密码错误返回同一个错误，不泄露账户是否存在
	if _, err := s.Login("nobody", "Secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知用户应返回凭证错误, got %v", err)
	}
}

func TestRegisterValidationOrder(t *testing.T) {
	s := newAuthService(t)
	seedUser(t, s, "taken", "Secret123", "taken@example.com")

	cases := []struct {
		name      string
		candidate models.User
		wantErr   error
		wantMsg   string
	}{
		{
			// 用户名格式先于其他所有规则检查
			name:      "用户名过短",
			candidate: models.User{Username: "ab", Password: "x", Email: "bad", FullName: "x"},
			wantMsg:   "用户名必须为3-20位字母、数字或下划线",
		},
		{
			name:      "用户名含非法字符",
			candidate: models.User{Username: "bad name!", Password: "Secret123", Email: "a@b.com", FullName: "张三"},
			wantMsg:   "用户名必须为3-20位字母、数字或下划线",
		},
		{
			name:      "用户名已存在",
			candidate: models.User{Username: "taken", Password: "Secret123", Email: "new@example.com", FullName: "张三"},
			wantErr:   ErrUsernameTaken,
		},
		{
			name:      "邮箱格式不正确",
			candidate: models.User{Username: "newuser", Password: "Secret123", Email: "not-an-email", FullName: "张三"},
			wantMsg:   "邮箱格式不正确",
		},
		{
			name:      "邮箱已被使用",
			candidate: models.User{Username: "newuser", Password: "Secret123", Email: "taken@example.com", FullName: "张三"},
			wantErr:   ErrEmailTaken,
		},
		{
			name:      "密码太短",
			candidate: models.User{Username: "newuser", Password: "Ab1", Email: "new@example.com", FullName: "张三"},
			wantMsg:   "密码长度至少为6位",
		},
		{
			name:      "姓名过短",
			candidate: models.User{Username: "newuser", Password: "Secret123", Email: "new@example.com", FullName: " x "},
			wantMsg:   "姓名长度必须在2-100个字符之间",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(&tc.candidate)
			if err == nil {
				t.Fatal("应返回错误")
			}
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			ve, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("应返回校验错误, got %v", err)
			}
			if ve.Msg != tc.wantMsg {
				t.Errorf("want %q, got %q", tc.wantMsg, ve.Msg)
			}
		})
	}
}

func TestRegisterDefaults(t *testing.T) {
	s := newAuthService(t)

	// 普通用户默认为customer角色
	user, err := s.Register(&models.User{
		ID:       99, // 客户端传入的ID必须被忽略
		Username: "bob",
		Password: "Secret123",
		Email:    "bob@example.com",
		FullName: "  Bob Chen  ",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.Role != models.RoleCustomer || user.RoleID != models.RoleIDCustomer {
		t.Errorf("角色默认值错误: role=%s role_id=%d", user.Role, user.RoleID)
	}
	if user.Status != models.UserStatusActive {
		t.Errorf("状态默认值错误: %d", user.Status)
	}
	if user.FullName != "Bob Chen" {
		t.Errorf("姓名应去掉首尾空格: %q", user.FullName)
	}
	if user.ID == 99 {
		t.Error("ID应由数据库分配")
	}

	// 用户名为admin(不区分大小写)的账户获得管理员角色
	admin, err := s.Register(&models.User{
		Username: "Admin",
		Password: "Secret123",
		Email:    "admin@example.com",
		FullName: "管理员",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if admin.Role != models.RoleAdmin || admin.RoleID != models.RoleIDAdmin {
		t.Errorf("admin用户名应获得管理员角色: role=%s role_id=%d", admin.Role, admin.RoleID)
	}
}

func TestForgotPasswordIssuesToken(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "Secret123", "alice@example.com")

	before := time.Now()
	msg, err := s.ForgotPassword("alice@example.com")
	if err != nil {
		t.Fatalf("申请重置失败: %v", err)
	}
	if msg != MsgResetEmailSent {
		t.Errorf("提示语错误: %q", msg)
	}

	var stored models.User
	if err := s.DB.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	if stored.ResetToken == nil || stored.ResetTokenExpiry == nil {
		t.Fatal("重置码和过期时间必须同时写入")
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(*stored.ResetToken) {
		t.Errorf("重置码应为6位数字: %q", *stored.ResetToken)
	}

	wantExpiry := before.Add(ResetTokenTTL).UnixMilli()
	if *stored.ResetTokenExpiry < wantExpiry || *stored.ResetTokenExpiry > wantExpiry+5000 {
		t.Errorf("过期时间应为15分钟后: %d", *stored.ResetTokenExpiry)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "Secret123", "alice@example.com")

	if _, err := s.ForgotPassword("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("未知邮箱应返回用户不存在, got %v", err)
	}

	// 未知邮箱不产生任何写入
	var stored models.User
	s.DB.First(&stored, user.ID)
	if stored.ResetToken != nil || stored.ResetTokenExpiry != nil {
		t.Error("未知邮箱请求不应修改任何账户")
	}
}

func TestVerifyResetTokenIsReadOnly(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "Secret123", "alice@example.com")
	if _, err := s.ForgotPassword("alice@example.com"); err != nil {
		t.Fatalf("申请重置失败: %v", err)
	}

	var stored models.User
	s.DB.First(&stored, user.ID)
	token := *stored.ResetToken

	// 验证可以重复进行，不消耗重置码
	for i := 0; i < 2; i++ {
		msg, err := s.VerifyResetToken(token)
		if err != nil {
			t.Fatalf("第%d次验证失败: %v", i+1, err)
		}
		if msg != MsgResetTokenValid {
			t.Errorf("提示语错误: %q", msg)
		}
	}

	var after models.User
	s.DB.First(&after, user.ID)
	if after.ResetToken == nil || *after.ResetToken != token {
		t.Error("验证不应清除重置码")
	}

	if _, err := s.VerifyResetToken("000000"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("未知重置码应返回无效, got %v", err)
	}
}

func TestVerifyResetTokenExpired(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "Secret123", "alice@example.com")

	token := "123456"
	expired := time.Now().Add(-time.Minute).UnixMilli()
	s.DB.Model(user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expired,
	})

	if _, err := s.VerifyResetToken(token); !errors.Is(err, ErrResetTokenExpired) {
		t.Errorf("过期重置码应返回已过期, got %v", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "OldSecret1", "alice@example.com")

	token := "654321"
	expired := time.Now().Add(-time.Minute).UnixMilli()
	s.DB.Model(user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expired,
	})

	if _, err := s.ResetPassword(token, "NewSecret1"); !errors.Is(err, ErrResetTokenExpired) {
		t.Fatalf("过期重置码应返回已过期, got %v", err)
	}

	// 过期重置失败后密码、重置码和过期时间都保持原样
	var after models.User
	s.DB.First(&after, user.ID)
	if after.Password != "OldSecret1" {
		t.Errorf("密码不应被修改: %q", after.Password)
	}
	if after.ResetToken == nil || *after.ResetToken != token {
		t.Error("重置码不应被清除")
	}
	if after.ResetTokenExpiry == nil || *after.ResetTokenExpiry != expired {
		t.Error("过期时间不应被修改")
	}
}

func TestResetPasswordClearsToken(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "OldSecret1", "alice@example.com")
	if _, err := s.ForgotPassword("alice@example.com"); err != nil {
		t.Fatalf("申请重置失败: %v", err)
	}

	var stored models.User
	s.DB.First(&stored, user.ID)
	token := *stored.ResetToken

	msg, err := s.ResetPassword(token, "NewSecret1")
	if err != nil {
		t.Fatalf("重置密码失败: %v", err)
	}
	if msg != MsgPasswordReset {
		t.Errorf("提示语错误: %q", msg)
	}

	var after models.User
	s.DB.First(&after, user.ID)
	if after.Password != "NewSecret1" {
		t.Errorf("密码未更新: %q", after.Password)
	}
	if after.ResetToken != nil || after.ResetTokenExpiry != nil {
		t.Error("重置后必须同时清除重置码和过期时间")
	}

	// 重置码一次性消费，重复提交无效
	if _, err := s.ResetPassword(token, "AnotherSecret1"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("已消费的重置码应返回无效, got %v", err)
	}

	if _, err := s.Login("alice", "NewSecret1"); err != nil {
		t.Errorf("新密码应可登录: %v", err)
	}
}

func TestResetPasswordWeakPassword(t *testing.T) {
	s := newAuthService(t)
	user := seedUser(t, s, "alice", "OldSecret1", "alice@example.com")
	if _, err := s.ForgotPassword("alice@example.com"); err != nil {
		t.Fatalf("申请重置失败: %v", err)
	}

	var stored models.User
	s.DB.First(&stored, user.ID)
	token := *stored.ResetToken

	_, err := s.ResetPassword(token, "weak")
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("弱密码应返回校验错误, got %v", err)
	}

	// 弱密码不消耗重置码
	var after models.User
	s.DB.First(&after, user.ID)
	if after.ResetToken == nil {
		t.Error("校验失败不应清除重置码")
	}
	if after.Password != "OldSecret1" {
		t.Error("校验失败不应修改密码")
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		wantMsg  string
	}{
		{"Ab1", "密码长度至少为6位"},
		{"abcdef1", "密码必须同时包含大写字母、小写字母和数字"},
		{"ABCDEF1", "密码必须同时包含大写字母、小写字母和数字"},
		{"Abcdefg", "密码必须同时包含大写字母、小写字母和数字"},
		{"Abcde1", ""},
		{"Secret123", ""},
	}

	for _, tc := range cases {
		if got := checkPasswordStrength(tc.password); got != tc.wantMsg {
			t.Errorf("checkPasswordStrength(%q) = %q, want %q", tc.password, got, tc.wantMsg)
		}
	}
}
