package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// 活动促销列表的缓存时长
const activePromotionsCacheTTL = 5 * time.Minute

// InterfacePromotionService 定义促销活动服务接口
type InterfacePromotionService interface {
	GetAllPromotions(page, pageSize int) ([]models.Promotion, int64, error)
	GetActivePromotions() ([]models.Promotion, error)
	GetPromotionsByType(promotionType string) ([]models.Promotion, error)
	GetPromotionByID(id uint) (*models.Promotion, error)
	GetPromotionByCode(code string) (*models.Promotion, error)
	CreatePromotion(promotion *models.Promotion) error
	UpdatePromotion(id uint, updates map[string]interface{}) (*models.Promotion, error)
	TogglePromotion(id uint) (*models.Promotion, error)
	UsePromotion(id uint) error
	DeletePromotion(id uint) error
}

// PromotionService 提供促销活动相关的服务
type PromotionService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewPromotionService 创建一个新的促销服务
func NewPromotionService(db *gorm.DB, cfg *config.Config, redis *RedisService) *PromotionService {
	return &PromotionService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

// GetAllPromotions 获取所有促销活动，支持分页
func (s *PromotionService) GetAllPromotions(page, pageSize int) ([]models.Promotion, int64, error) {
	var promotions []models.Promotion
	var total int64

	if err := s.DB.Model(&models.Promotion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&promotions).Error; err != nil {
		return nil, 0, err
	}

	return promotions, total, nil
}

// GetActivePromotions 获取当前有效的促销活动：启用中且处于时间窗口内。
// 结果短暂缓存在Redis里，缓存不可用时直接回源数据库
func (s *PromotionService) GetActivePromotions() ([]models.Promotion, error) {
	var cached []models.Promotion
	if s.Redis != nil {
		if err := s.Redis.GetActivePromotions(&cached); err == nil {
			return cached, nil
		}
	}

	now := time.Now()
	var promotions []models.Promotion
	if err := s.DB.Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Find(&promotions).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheActivePromotions(promotions, activePromotionsCacheTTL); err != nil {
			config.Warning("缓存促销列表失败: %v", err)
		}
	}

	return promotions, nil
}

// GetPromotionsByType 按活动类型查询促销活动
func (s *PromotionService) GetPromotionsByType(promotionType string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := s.DB.Where("promotion_type = ?", promotionType).Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// GetPromotionByID 根据ID获取促销活动
func (s *PromotionService) GetPromotionByID(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := s.DB.First(&promotion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// GetPromotionByCode 根据活动码获取促销活动
func (s *PromotionService) GetPromotionByCode(code string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := s.DB.Where("code = ?", strings.TrimSpace(code)).First(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// CreatePromotion 创建新促销活动
func (s *PromotionService) CreatePromotion(promotion *models.Promotion) error {
	if promotion.Code == "" {
		return NewValidationError("活动码不能为空")
	}
	if promotion.Name == "" {
		return NewValidationError("活动名称不能为空")
	}

	var count int64
	if err := s.DB.Model(&models.Promotion{}).Where("code = ?", promotion.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewValidationError("活动码已存在")
	}

	if err := s.DB.Create(promotion).Error; err != nil {
		return err
	}

	s.invalidateActiveCache()
	return nil
}

// UpdatePromotion 更新促销活动
func (s *PromotionService) UpdatePromotion(id uint, updates map[string]interface{}) (*models.Promotion, error) {
	promotion, err := s.GetPromotionByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(promotion).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.invalidateActiveCache()
	return s.GetPromotionByID(id)
}

// TogglePromotion 切换促销活动启用状态
func (s *PromotionService) TogglePromotion(id uint) (*models.Promotion, error) {
	promotion, err := s.GetPromotionByID(id)
	if err != nil {
		return nil, err
	}

	next := !promotion.Active()
	if err := s.DB.Model(promotion).Update("is_active", next).Error; err != nil {
		return nil, err
	}

	s.invalidateActiveCache()
	return s.GetPromotionByID(id)
}

// UsePromotion 消费一次促销名额，上限检查和计数递增在同一条UPDATE内完成
func (s *PromotionService) UsePromotion(id uint) error {
	promotion, err := s.GetPromotionByID(id)
	if err != nil {
		return err
	}

	query := s.DB.Model(&models.Promotion{}).Where("id = ?", id)
	if promotion.UsageLimit != nil {
		query = query.Where("usage_count < ?", *promotion.UsageLimit)
	}

	result := query.Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromotionUsageLimit
	}
	return nil
}

// DeletePromotion 删除促销活动
func (s *PromotionService) DeletePromotion(id uint) error {
	result := s.DB.Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromotionNotFound
	}

	s.invalidateActiveCache()
	return nil
}

// invalidateActiveCache 在活动数据变更后丢弃缓存，失败只记日志
func (s *PromotionService) invalidateActiveCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.InvalidateActivePromotions(); err != nil {
		config.Warning("清除促销缓存失败: %v", err)
	}
}
