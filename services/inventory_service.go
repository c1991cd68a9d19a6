package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceInventoryService 定义库存服务接口
type InterfaceInventoryService interface {
	GetAllInventories(page, pageSize int) ([]models.Inventory, int64, error)
	GetInventoryByID(id uint) (*models.Inventory, error)
	GetInventoryByProductID(productID uint) (*models.Inventory, error)
	GetInventoriesByStatus(status string) ([]models.Inventory, error)
	GetLowStock() ([]models.Inventory, error)
	GetOutOfStock() ([]models.Inventory, error)
	CreateInventory(inventory *models.Inventory) error
	UpdateInventory(id uint, updates map[string]interface{}) (*models.Inventory, error)
	AddStock(id uint, quantity int, reason string) (*models.Inventory, error)
	RemoveStock(id uint, quantity int, reason string) (*models.Inventory, error)
	DeleteInventory(id uint) error
}

// InventoryService 提供库存相关的服务
type InventoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInventoryService 创建一个新的库存服务
func NewInventoryService(db *gorm.DB, cfg *config.Config) *InventoryService {
	return &InventoryService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllInventories 获取所有库存记录，支持分页
func (s *InventoryService) GetAllInventories(page, pageSize int) ([]models.Inventory, int64, error) {
	var inventories []models.Inventory
	var total int64

	if err := s.DB.Model(&models.Inventory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&inventories).Error; err != nil {
		return nil, 0, err
	}

	return inventories, total, nil
}

// GetInventoryByID 根据ID获取库存记录
func (s *InventoryService) GetInventoryByID(id uint) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := s.DB.First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &inventory, nil
}

// GetInventoryByProductID 根据商品ID获取库存记录
func (s *InventoryService) GetInventoryByProductID(productID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := s.DB.Where("product_id = ?", productID).First(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &inventory, nil
}

// GetInventoriesByStatus 按库存状态查询
func (s *InventoryService) GetInventoriesByStatus(status string) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := s.DB.Where("status = ?", status).Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// GetLowStock 获取低库存的记录
func (s *InventoryService) GetLowStock() ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := s.DB.Where("quantity_in_stock > 0 AND quantity_in_stock < reorder_level").Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// GetOutOfStock 获取缺货的记录，和状态派生规则保持同一判定（数量 <= 0）
func (s *InventoryService) GetOutOfStock() ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := s.DB.Where("quantity_in_stock <= 0").Find(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// CreateInventory 创建库存记录，状态在落库前统一派生
func (s *InventoryService) CreateInventory(inventory *models.Inventory) error {
	// 每个商品只允许一条库存记录
	var count int64
	if err := s.DB.Model(&models.Inventory{}).Where("product_id = ?", inventory.ProductID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("该商品已有库存记录")
	}

	inventory.LastUpdated = time.Now()
	return s.DB.Create(inventory).Error
}

// UpdateInventory 更新库存记录。数量或阈值发生变化时，
// 状态在同一次保存内同步重算
func (s *InventoryService) UpdateInventory(id uint, updates map[string]interface{}) (*models.Inventory, error) {
	inventory, err := s.GetInventoryByID(id)
	if err != nil {
		return nil, err
	}

	if quantity, ok := intFromUpdate(updates["quantity_in_stock"]); ok {
		inventory.QuantityInStock = quantity
	}
	if level, ok := intFromUpdate(updates["reorder_level"]); ok {
		inventory.ReorderLevel = level
	}
	if qty, ok := intFromUpdate(updates["reorder_quantity"]); ok {
		inventory.ReorderQuantity = qty
	}
	if reason, ok := updates["updated_reason"].(string); ok {
		inventory.UpdatedReason = reason
	}

	inventory.LastUpdated = time.Now()
	inventory.UpdateStatus()

	if err := s.DB.Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

// AddStock 入库指定数量并刷新补货时间
func (s *InventoryService) AddStock(id uint, quantity int, reason string) (*models.Inventory, error) {
	if quantity <= 0 {
		return nil, NewValidationError("入库数量必须大于0")
	}

	inventory, err := s.GetInventoryByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inventory.QuantityInStock += quantity
	inventory.LastRestocked = &now
	inventory.LastUpdated = now
	inventory.UpdatedReason = reason
	inventory.UpdateStatus()

	if err := s.DB.Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

// RemoveStock 出库指定数量，库存不足时拒绝
func (s *InventoryService) RemoveStock(id uint, quantity int, reason string) (*models.Inventory, error) {
	if quantity <= 0 {
		return nil, NewValidationError("出库数量必须大于0")
	}

	inventory, err := s.GetInventoryByID(id)
	if err != nil {
		return nil, err
	}

	if inventory.QuantityInStock < quantity {
		return nil, ErrInsufficientStock
	}

	inventory.QuantityInStock -= quantity
	inventory.LastUpdated = time.Now()
	inventory.UpdatedReason = reason
	inventory.UpdateStatus()

	if err := s.DB.Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

// DeleteInventory 删除库存记录
func (s *InventoryService) DeleteInventory(id uint) error {
	result := s.DB.Delete(&models.Inventory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// intFromUpdate 从更新字典里取整数值，兼容JSON解码出来的float64
func intFromUpdate(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
