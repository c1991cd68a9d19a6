package services

import (
	"errors"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceProductService 定义商品服务接口
type InterfaceProductService interface {
	GetAllProducts(page, pageSize int) ([]models.Product, int64, error)
	GetProductByID(id uint) (*models.Product, error)
	GetProductsByCategory(categoryID uint) ([]models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error)
	DeleteProduct(id uint) error
}

// ProductService 提供商品相关的服务
type ProductService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewProductService 创建一个新的商品服务
func NewProductService(db *gorm.DB, cfg *config.Config) *ProductService {
	return &ProductService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllProducts 获取所有商品，支持分页
func (s *ProductService) GetAllProducts(page, pageSize int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := s.DB.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProductByID 根据ID获取商品
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProductsByCategory 按分类查询商品
func (s *ProductService) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct 创建新商品
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Name == "" {
		return NewValidationError("商品名称不能为空")
	}
	if product.Price < 0 {
		return NewValidationError("商品价格不能为负数")
	}

	// 分类存在性校验
	if product.CategoryID != nil {
		var count int64
		if err := s.DB.Model(&models.Category{}).Where("id = ?", *product.CategoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCategoryNotFound
		}
	}

	return s.DB.Create(product).Error
}

// UpdateProduct 更新商品信息
func (s *ProductService) UpdateProduct(id uint, updates map[string]interface{}) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetProductByID(id)
}

// DeleteProduct 删除商品
func (s *ProductService) DeleteProduct(id uint) error {
	result := s.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
