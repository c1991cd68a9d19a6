package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// 优惠券折扣类型
const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

// Voucher represents discount codes with usage constraints
type Voucher struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"type:varchar(50);unique;not null" json:"code"`
	Discount    float64 `gorm:"not null" json:"discount"`
	Type        string  `gorm:"type:varchar(20);not null" json:"type"` // percent 或 fixed
	Description string  `gorm:"type:varchar(500)" json:"description"`
	ExpiryDate  string  `gorm:"type:varchar(10)" json:"expiry_date"` // YYYY-MM-DD
	MinOrder    *int    `json:"min_order"`
	MaxUse      *int    `json:"max_use"`
	UsedCount   int     `gorm:"default:0" json:"used_count"`
	IsActive    *bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前补齐默认值
func (v *Voucher) BeforeCreate(tx *gorm.DB) error {
	if v.IsActive == nil {
		active := true
		v.IsActive = &active
	}
	return nil
}

// BeforeSave 是一个GORM钩子，保证券码总是以大写形式落库
func (v *Voucher) BeforeSave(tx *gorm.DB) error {
	v.Code = strings.ToUpper(strings.TrimSpace(v.Code))
	return nil
}

// Active 返回优惠券是否处于启用状态
func (v *Voucher) Active() bool {
	return v.IsActive != nil && *v.IsActive
}
