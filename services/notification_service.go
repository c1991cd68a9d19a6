package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceNotificationService 定义通知服务接口
type InterfaceNotificationService interface {
	SendNotification(notification *models.Notification, targetUserPhones []string) error
	GetNotificationsSince(since time.Time, phone string) ([]models.Notification, error)
	GetAllNotifications(page, pageSize int) ([]models.Notification, int64, error)
	DeleteNotification(id string) error
}

// NotificationService 提供站内通知的发布和拉取。
// 通知持久化落库，客户端按时间增量轮询
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNotificationService 创建一个新的通知服务
func NewNotificationService(db *gorm.DB, cfg *config.Config) *NotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
	}
}

// SendNotification 发布一条通知。定向通知时记录目标用户手机号列表
func (s *NotificationService) SendNotification(notification *models.Notification, targetUserPhones []string) error {
	if notification.Title == "" {
		return NewValidationError("通知标题不能为空")
	}
	if notification.Message == "" {
		return NewValidationError("通知内容不能为空")
	}

	notification.ID = uuid.NewString()
	notification.SentAt = time.Now()
	notification.IsActive = true

	if len(targetUserPhones) > 0 {
		notification.TargetUsers = models.NotificationTargetSpecific
		encoded, err := json.Marshal(targetUserPhones)
		if err != nil {
			return err
		}
		notification.TargetUserIDs = string(encoded)
	} else {
		notification.TargetUsers = models.NotificationTargetAll
		notification.TargetUserIDs = ""
	}

	return s.DB.Create(notification).Error
}

// GetNotificationsSince 拉取指定时间之后的新通知。
// 带手机号时额外返回定向给该用户的通知
func (s *NotificationService) GetNotificationsSince(since time.Time, phone string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.DB.Where("sent_at > ? AND is_active = ?", since, true).
		Order("sent_at ASC").Find(&notifications).Error; err != nil {
		return nil, err
	}

	visible := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.TargetUsers != models.NotificationTargetSpecific {
			visible = append(visible, n)
			continue
		}
		if phone == "" {
			continue
		}
		var targets []string
		if err := json.Unmarshal([]byte(n.TargetUserIDs), &targets); err != nil {
			continue
		}
		for _, t := range targets {
			if t == phone {
				visible = append(visible, n)
				break
			}
		}
	}

	return visible, nil
}

// GetAllNotifications 获取所有通知，支持分页，按发送时间倒序
func (s *NotificationService) GetAllNotifications(page, pageSize int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := s.DB.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("sent_at DESC").Limit(pageSize).Offset(offset).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// DeleteNotification 删除通知
func (s *NotificationService) DeleteNotification(id string) error {
	result := s.DB.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
