package models

import "time"

// 通知的目标受众
const (
	NotificationTargetAll      = "all"
	NotificationTargetSpecific = "specific"
)

// Notification represents admin broadcast messages polled by clients.
// 持久化存储，取代历史版本里进程级的静态通知列表。
type Notification struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"` // UUID
	Title         string    `gorm:"type:varchar(200);not null" json:"title"`
	Message       string    `gorm:"type:varchar(2000);not null" json:"message"`
	Type          string    `gorm:"type:varchar(20)" json:"type"` // promotion, update, alert, news
	TargetUsers   string    `gorm:"type:varchar(20)" json:"target_users"`
	TargetUserIDs string    `gorm:"type:varchar(1000)" json:"-"` // JSON编码的用户手机号列表
	ImageURL      string    `gorm:"type:varchar(255)" json:"image_url"`
	ActionURL     string    `gorm:"type:varchar(255)" json:"action_url"`
	SentAt        time.Time `gorm:"index" json:"sent_at"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}
