package services

import (
	"time"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// 管理后台统计的缓存时长
const adminStatsCacheTTL = 60 * time.Second

// AdminStats 是管理后台首页的汇总数据
type AdminStats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalOrders    int64   `json:"total_orders"`
	TotalCustomers int64   `json:"total_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingOrders  int64   `json:"pending_orders"`
	LowStockItems  int64   `json:"low_stock_items"`
	PendingReviews int64   `json:"pending_reviews"`
}

// InterfaceStatsService 定义统计服务接口
type InterfaceStatsService interface {
	GetAdminStats() (*AdminStats, error)
}

// StatsService 提供管理后台的统计汇总
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewStatsService 创建一个新的统计服务
func NewStatsService(db *gorm.DB, cfg *config.Config, redis *RedisService) *StatsService {
	return &StatsService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

// GetAdminStats 汇总各实体的计数和营收总额。
// 结果短暂缓存在Redis里，缓存不可用时直接回源数据库
func (s *StatsService) GetAdminStats() (*AdminStats, error) {
	if s.Redis != nil {
		var cached AdminStats
		if err := s.Redis.GetAdminStats(&cached); err == nil {
			return &cached, nil
		}
	}

	stats := &AdminStats{}

	if err := s.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}

	// SUM在空表上返回NULL，用COALESCE兜底
	if err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Inventory{}).
		Where("quantity_in_stock > 0 AND quantity_in_stock < reorder_level").
		Count(&stats.LowStockItems).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Review{}).Where("status = ?", models.ReviewStatusPending).Count(&stats.PendingReviews).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.CacheAdminStats(stats, adminStatsCacheTTL); err != nil {
			config.Warning("缓存统计数据失败: %v", err)
		}
	}

	return stats, nil
}
