package services

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
	"candyshop-http-service/utils"
)

// 密码重置码的有效期
const ResetTokenTTL = 15 * time.Minute

// 重置码长度：6位数字
const resetTokenLength = 6

// 认证流程的用户提示语
const (
	MsgResetEmailSent  = "重置码已发送到您的邮箱，请在15分钟内完成验证"
	MsgResetTokenValid = "重置码有效"
	MsgPasswordReset   = "密码重置成功"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
)

// InterfaceAuthService 定义认证服务接口
type InterfaceAuthService interface {
	Login(username, password string) (*models.User, error)
	Register(candidate *models.User) (*models.User, error)
	ForgotPassword(email string) (string, error)
	VerifyResetToken(token string) (string, error)
	ResetPassword(token, newPassword string) (string, error)
}

// AuthService 提供登录、注册和密码找回相关的服务
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	Email  InterfaceEmailService
}

// NewAuthService 创建一个新的认证服务
func NewAuthService(db *gorm.DB, cfg *config.Config, email InterfaceEmailService) *AuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		Email:  email,
	}
}

// Login 校验用户名和密码。
// 密码按原样存储、逐字节比较，保持与旧系统一致的登录语义
func (s *AuthService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Register 按固定顺序校验注册信息，遇到第一条不通过的规则立即返回。
// 校验顺序：用户名格式、用户名唯一、邮箱格式、邮箱唯一、密码强度、姓名长度
func (s *AuthService) Register(candidate *models.User) (*models.User, error) {
	// 用户名
	if !usernamePattern.MatchString(candidate.Username) {
		return nil, NewValidationError("用户名必须为3-20位字母、数字或下划线")
	}
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", candidate.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	// 邮箱
	if !emailPattern.MatchString(candidate.Email) {
		return nil, NewValidationError("邮箱格式不正确")
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", candidate.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	// 密码强度
	if msg := checkPasswordStrength(candidate.Password); msg != "" {
		return nil, NewValidationError(msg)
	}

	// 姓名
	fullName := strings.TrimSpace(candidate.FullName)
	if len(fullName) < 2 || len(fullName) > 100 {
		return nil, NewValidationError("姓名长度必须在2-100个字符之间")
	}
	candidate.FullName = fullName

	// 角色默认值：未指定时，用户名为admin(不区分大小写)的账户获得管理员角色
	if candidate.Role == "" {
		if strings.EqualFold(candidate.Username, "admin") {
			candidate.Role = models.RoleAdmin
		} else {
			candidate.Role = models.RoleCustomer
		}
	}
	candidate.RoleID = models.RoleIDForRole(candidate.Role)

	if candidate.Status == 0 {
		candidate.Status = models.UserStatusActive
	}

	// ID由数据库分配
	candidate.ID = 0

	if err := s.DB.Create(candidate).Error; err != nil {
		return nil, err
	}

	return candidate, nil
}

// ForgotPassword 为邮箱对应的账户签发6位数字重置码并通过邮件送出。
// 邮件发送失败只记录日志，不影响重置码的签发
func (s *AuthService) ForgotPassword(email string) (string, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	token, err := utils.RandomDigitCode(resetTokenLength)
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(ResetTokenTTL).UnixMilli()

	// 两个字段必须同时写入
	if err := s.DB.Model(&user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return "", err
	}

	if err := s.Email.SendResetPasswordEmail(user.Email, token); err != nil {
		config.Error("发送重置邮件失败: %v", err)
	}

	return MsgResetEmailSent, nil
}

// VerifyResetToken 检查重置码是否有效。只读操作，不清除重置码
func (s *AuthService) VerifyResetToken(token string) (string, error) {
	var user models.User
	if err := s.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrResetTokenInvalid
		}
		return "", err
	}

	if user.ResetTokenExpiry == nil || time.Now().UnixMilli() > *user.ResetTokenExpiry {
		return "", ErrResetTokenExpired
	}

	return MsgResetTokenValid, nil
}

// ResetPassword 校验重置码和新密码强度后更新密码，
// 并原子地清除重置码和过期时间（两个字段同清）
func (s *AuthService) ResetPassword(token, newPassword string) (string, error) {
	var user models.User
	if err := s.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrResetTokenInvalid
		}
		return "", err
	}

	if user.ResetTokenExpiry == nil || time.Now().UnixMilli() > *user.ResetTokenExpiry {
		return "", ErrResetTokenExpired
	}

	if msg := checkPasswordStrength(newPassword); msg != "" {
		return "", NewValidationError(msg)
	}

	// WHERE条件带上重置码，和并发的重复提交互斥
	result := s.DB.Model(&models.User{}).
		Where("id = ? AND reset_token = ?", user.ID, token).
		Updates(map[string]interface{}{
			"password":           newPassword,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrResetTokenInvalid
	}

	return MsgPasswordReset, nil
}

// checkPasswordStrength 校验密码强度，通过时返回空串，
// 否则返回第一条不满足的规则说明
func checkPasswordStrength(password string) string {
	if len(password) < 6 {
		return "密码长度至少为6位"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return "密码必须同时包含大写字母、小写字母和数字"
	}

	return ""
}
