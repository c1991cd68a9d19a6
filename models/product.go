package models

import "time"

// Product represents items sold in the shop
type Product struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(100);not null" json:"name"`
	Description   string  `gorm:"type:varchar(1000)" json:"description"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	StockQuantity int     `json:"stock_quantity"`
	Image         string  `gorm:"type:varchar(255)" json:"image"`
	CategoryID    *uint   `json:"category_id"`
	BrandID       *uint   `json:"brand_id"`
	Status        int     `gorm:"default:1" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups products
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
