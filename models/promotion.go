package models

import (
	"time"

	"gorm.io/gorm"
)

// 促销活动类型
const (
	PromotionTypeFlashSale = "flash_sale"
	PromotionTypeSeasonal  = "seasonal"
	PromotionTypeDiscount  = "discount"
)

// Promotion represents time-windowed marketing campaigns
type Promotion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Code          string     `gorm:"type:varchar(50);unique;not null" json:"code"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	Description   string     `gorm:"type:varchar(500)" json:"description"`
	DiscountType  string     `gorm:"type:varchar(20)" json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MaxDiscount   *float64   `json:"max_discount"`
	MinPurchase   *float64   `json:"min_purchase"`
	UsageLimit    *int       `json:"usage_limit"`
	UsageCount    int        `gorm:"default:0" json:"usage_count"`
	PromotionType string     `gorm:"type:varchar(20)" json:"promotion_type"`
	IsActive      *bool      `gorm:"default:true" json:"is_active"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 是一个GORM钩子，补齐默认值
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
	return nil
}

// Active 返回促销活动是否处于启用状态
func (p *Promotion) Active() bool {
	return p.IsActive != nil && *p.IsActive
}
