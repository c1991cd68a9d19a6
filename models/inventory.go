package models

import (
	"time"

	"gorm.io/gorm"
)

// 库存状态
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)

// 库存阈值默认值
const (
	DefaultReorderLevel    = 10
	DefaultReorderQuantity = 50
)

// Inventory represents per-product stock records
type Inventory struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ProductID       uint       `gorm:"not null;uniqueIndex" json:"product_id"`
	QuantityInStock int        `gorm:"not null" json:"quantity_in_stock"`
	ReorderLevel    int        `gorm:"default:10" json:"reorder_level"`
	ReorderQuantity int        `gorm:"default:50" json:"reorder_quantity"`
	Status          string     `gorm:"type:varchar(20)" json:"status"`
	LastRestocked   *time.Time `json:"last_restocked"`
	LastUpdated     time.Time  `json:"last_updated"`
	UpdatedReason   string     `gorm:"type:varchar(255)" json:"updated_reason"`
}

// DeriveStockStatus 根据库存量和补货阈值计算库存状态。
// 三种状态互斥且覆盖所有输入：数量 <= 0 为缺货，小于阈值为低库存，其余为正常。
func DeriveStockStatus(quantityInStock, reorderLevel int) string {
	if quantityInStock <= 0 {
		return StockStatusOut
	}
	if quantityInStock < reorderLevel {
		return StockStatusLow
	}
	return StockStatusIn
}

// UpdateStatus 重新计算并写入派生状态，任何改变数量或阈值的地方都必须同步调用
func (i *Inventory) UpdateStatus() {
	i.Status = DeriveStockStatus(i.QuantityInStock, i.ReorderLevel)
}

// BeforeCreate 是一个GORM钩子，补齐阈值默认值
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ReorderLevel == 0 {
		i.ReorderLevel = DefaultReorderLevel
	}
	if i.ReorderQuantity == 0 {
		i.ReorderQuantity = DefaultReorderQuantity
	}
	return nil
}

// BeforeSave 是一个GORM钩子，兜底保证状态不会带着过期值落库
func (i *Inventory) BeforeSave(tx *gorm.DB) error {
	i.UpdateStatus()
	return nil
}
