package services

import (
	"errors"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceOrderService 定义订单服务接口
type InterfaceOrderService interface {
	GetAllOrders(page, pageSize int) ([]models.Order, int64, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByStatus(status string) ([]models.Order, error)
	GetOrdersByPhone(phone string) ([]models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrderStatus(id uint, status string) (*models.Order, error)
	DeleteOrder(id uint) error
}

// OrderService 提供订单相关的服务
type OrderService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOrderService 创建一个新的订单服务
func NewOrderService(db *gorm.DB, cfg *config.Config) *OrderService {
	return &OrderService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllOrders 获取所有订单，支持分页，按创建时间倒序
func (s *OrderService) GetAllOrders(page, pageSize int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := s.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetOrderByID 根据ID获取订单
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrdersByStatus 按状态查询订单
func (s *OrderService) GetOrdersByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("status = ?", status).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrdersByPhone 按手机号查询订单
func (s *OrderService) GetOrdersByPhone(phone string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("phone = ?", phone).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder 创建新订单。渠道和状态缺省时补齐，
// 创建时间由服务端设置且创建后不再变更
func (s *OrderService) CreateOrder(order *models.Order) error {
	if order.CustomerName == "" {
		return NewValidationError("收货人姓名不能为空")
	}
	if order.Phone == "" {
		return NewValidationError("联系电话不能为空")
	}
	if order.TotalAmount < 0 {
		return NewValidationError("订单金额不能为负数")
	}

	if order.OrderChannel == "" {
		order.OrderChannel = "mobile"
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	// ID由数据库分配
	order.ID = 0

	return s.DB.Create(order).Error
}

// UpdateOrderStatus 更新订单状态
func (s *OrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetOrderByID(id)
}

// DeleteOrder 删除订单
func (s *OrderService) DeleteOrder(id uint) error {
	result := s.DB.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
