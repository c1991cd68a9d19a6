package models

import (
	"time"

	"gorm.io/gorm"
)

// 订单状态为自由文本，常见取值
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// Order represents customer orders
type Order struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	CustomerID      *uint   `json:"customer_id"`
	CustomerName    string  `gorm:"type:varchar(100)" json:"customer_name"`
	Phone           string  `gorm:"type:varchar(20)" json:"phone"`
	Address         string  `gorm:"type:varchar(255)" json:"address"`
	OrderChannel    string  `gorm:"type:varchar(20)" json:"order_channel"`
	PaymentMethod   string  `gorm:"type:varchar(50)" json:"payment_method"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `gorm:"type:varchar(30)" json:"status"`
	TransactionCode string  `gorm:"type:varchar(100)" json:"transaction_code"`

	// 创建后不再变更
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate 是一个GORM钩子，创建时间只在首次落库时设置
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	return nil
}
