package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	ChangePassword(id uint, oldPassword, newPassword string) error
	DeleteUser(id uint) error
}

// UserService 提供用户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllUsers 获取所有用户，支持分页
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// 获取总数
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 根据用户名获取用户
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser 更新用户信息。角色变更时同步更新角色ID
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新用户名，需要检查唯一性
	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUsernameTaken
		}
	}

	// 如果更新邮箱，需要检查唯一性
	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	// 角色和角色ID保持一致
	if role, ok := updates["role"].(string); ok {
		updates["role_id"] = models.RoleIDForRole(role)
	}

	if fullName, ok := updates["full_name"].(string); ok {
		trimmed := strings.TrimSpace(fullName)
		if len(trimmed) < 2 || len(trimmed) > 100 {
			return nil, NewValidationError("姓名长度必须在2-100个字符之间")
		}
		updates["full_name"] = trimmed
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的用户信息
	return s.GetUserByID(id)
}

// ChangePassword 校验旧密码后更新为新密码
func (s *UserService) ChangePassword(id uint, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if user.Password != oldPassword {
		return ErrPasswordIncorrect
	}

	if msg := checkPasswordStrength(newPassword); msg != "" {
		return NewValidationError(msg)
	}

	return s.DB.Model(user).Update("password", newPassword).Error
}

// DeleteUser 删除用户
func (s *UserService) DeleteUser(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
