package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/services"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService
	emailService services.InterfaceEmailService

	// 业务服务
	authService         services.InterfaceAuthService
	userService         services.InterfaceUserService
	voucherService      services.InterfaceVoucherService
	inventoryService    services.InterfaceInventoryService
	orderService        services.InterfaceOrderService
	productService      services.InterfaceProductService
	categoryService     services.InterfaceCategoryService
	reviewService       services.InterfaceReviewService
	promotionService    services.InterfacePromotionService
	notificationService services.InterfaceNotificationService
	statsService        services.InterfaceStatsService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)
	c.emailService = services.NewEmailService(c.config)

	// 初始化业务服务
	c.authService = services.NewAuthService(c.db, c.config, c.emailService)
	c.userService = services.NewUserService(c.db, c.config)
	c.voucherService = services.NewVoucherService(c.db, c.config)
	c.inventoryService = services.NewInventoryService(c.db, c.config)
	c.orderService = services.NewOrderService(c.db, c.config)
	c.productService = services.NewProductService(c.db, c.config)
	c.categoryService = services.NewCategoryService(c.db, c.config)
	c.reviewService = services.NewReviewService(c.db, c.config)
	c.promotionService = services.NewPromotionService(c.db, c.config, c.redisService)
	c.notificationService = services.NewNotificationService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.config, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "email":
		return c.emailService
	case "auth":
		return c.authService
	case "user":
		return c.userService
	case "voucher":
		return c.voucherService
	case "inventory":
		return c.inventoryService
	case "order":
		return c.orderService
	case "product":
		return c.productService
	case "category":
		return c.categoryService
	case "review":
		return c.reviewService
	case "promotion":
		return c.promotionService
	case "notification":
		return c.notificationService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
