package models

import "time"

// 评价审核状态
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review represents customer product reviews with moderation workflow
type Review struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProductID      uint   `gorm:"not null;index" json:"product_id"`
	CustomerID     uint   `gorm:"not null" json:"customer_id"`
	Title          string `gorm:"type:varchar(200)" json:"title"`
	Content        string `gorm:"type:varchar(2000)" json:"content"`
	Rating         int    `json:"rating"` // 1-5
	Status         string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	HelpfulCount   int    `gorm:"default:0" json:"helpful_count"`
	UnhelpfulCount int    `gorm:"default:0" json:"unhelpful_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
