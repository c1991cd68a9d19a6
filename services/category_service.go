package services

import (
	"errors"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// InterfaceCategoryService 定义分类服务接口
type InterfaceCategoryService interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(id uint, name string) (*models.Category, error)
	DeleteCategory(id uint) error
}

// CategoryService 提供商品分类相关的服务
type CategoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCategoryService 创建一个新的分类服务
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllCategories 获取所有分类
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID 根据ID获取分类
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory 创建新分类
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if category.Name == "" {
		return NewValidationError("分类名称不能为空")
	}
	return s.DB.Create(category).Error
}

// UpdateCategory 更新分类名称
func (s *CategoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, NewValidationError("分类名称不能为空")
	}

	if err := s.DB.Model(category).Update("name", name).Error; err != nil {
		return nil, err
	}

	return s.GetCategoryByID(id)
}

// DeleteCategory 删除分类。仍有商品挂在该分类下时拒绝删除
func (s *CategoryService) DeleteCategory(id uint) error {
	var count int64
	if err := s.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("该分类下仍有商品，无法删除")
	}

	result := s.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
