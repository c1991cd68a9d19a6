package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/controllers"
	_ "candyshop-http-service/docs"
	"candyshop-http-service/middleware"
	"candyshop-http-service/services/container"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建Redis客户端
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要管理员权限的路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", controllers.Ping)
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))
	api.GET("/health/test-connection", controllers.HandleHealthFunc(container, "testConnection"))

	// 认证路由，对登录和找回密码做限流
	authLimiter := middleware.CombinedRateLimiter(5, 10)
	api.POST("/auth/login", authLimiter, controllers.HandleAuthFunc(container, "login"))
	api.POST("/auth/register", authLimiter, controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/forgot-password", authLimiter, controllers.HandleAuthFunc(container, "forgotPassword"))
	api.POST("/auth/verify-reset-token", controllers.HandleAuthFunc(container, "verifyResetToken"))
	api.POST("/auth/reset-password", controllers.HandleAuthFunc(container, "resetPassword"))

	// 商品目录，读接口走短缓存
	catalogCache := middleware.Cache(middleware.CacheConfig{Expiration: 2 * time.Minute})
	api.GET("/products", catalogCache, controllers.HandleProductFunc(container, "getProducts"))
	api.GET("/products/:id", catalogCache, controllers.HandleProductFunc(container, "getProduct"))
	api.GET("/products/category/:category_id", catalogCache, controllers.HandleProductFunc(container, "getProductsByCategory"))
	api.GET("/categories", catalogCache, controllers.HandleCategoryFunc(container, "getCategories"))
	api.GET("/categories/:id", controllers.HandleCategoryFunc(container, "getCategory"))

	// 券码校验和促销查询
	api.POST("/vouchers/validate", controllers.HandleVoucherFunc(container, "validateVoucher"))
	api.GET("/vouchers/active", controllers.HandleVoucherFunc(container, "getActiveVouchers"))
	api.GET("/promotions/active", controllers.HandlePromotionFunc(container, "getActivePromotions"))
	api.GET("/promotions/type/:type", controllers.HandlePromotionFunc(container, "getPromotionsByType"))
	api.GET("/promotions/code/:code", controllers.HandlePromotionFunc(container, "getPromotionByCode"))

	// 下单和订单查询
	api.POST("/orders", controllers.HandleOrderFunc(container, "createOrder"))
	api.GET("/orders/phone/:phone", controllers.HandleOrderFunc(container, "getOrdersByPhone"))

	// 商品评价
	api.GET("/reviews/product/:product_id", controllers.HandleReviewFunc(container, "getProductReviews"))
	api.POST("/reviews", controllers.HandleReviewFunc(container, "createReview"))
	api.PUT("/reviews/:id/helpful", controllers.HandleReviewFunc(container, "markHelpful"))
	api.PUT("/reviews/:id/unhelpful", controllers.HandleReviewFunc(container, "markUnhelpful"))

	// 客户端增量拉取通知
	api.GET("/notifications/new", controllers.HandleAdminFunc(container, "getNewNotifications"))
}

// registerAdminRoutes 注册需要管理员权限的路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 用户管理路由
	auth.Group("/users").GET("", controllers.HandleUserFunc(container, "getUsers"))
	auth.Group("/users").GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	auth.Group("/users").PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))
	auth.Group("/users").PUT("/:id/password", controllers.HandleUserFunc(container, "changePassword"))
	auth.Group("/users").PUT("/:id/toggle-status", controllers.HandleUserFunc(container, "toggleUserStatus"))
	auth.Group("/users").DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// 商品管理路由
	auth.Group("/products").POST("", controllers.HandleProductFunc(container, "createProduct"))
	auth.Group("/products").PUT("/:id", controllers.HandleProductFunc(container, "updateProduct"))
	auth.Group("/products").DELETE("/:id", controllers.HandleProductFunc(container, "deleteProduct"))

	// 分类管理路由
	auth.Group("/categories").POST("", controllers.HandleCategoryFunc(container, "createCategory"))
	auth.Group("/categories").PUT("/:id", controllers.HandleCategoryFunc(container, "updateCategory"))
	auth.Group("/categories").DELETE("/:id", controllers.HandleCategoryFunc(container, "deleteCategory"))

	// 优惠券管理路由
	auth.Group("/vouchers").GET("", controllers.HandleVoucherFunc(container, "getVouchers"))
	auth.Group("/vouchers").GET("/:id", controllers.HandleVoucherFunc(container, "getVoucher"))
	auth.Group("/vouchers").GET("/code/:code", controllers.HandleVoucherFunc(container, "getVoucherByCode"))
	auth.Group("/vouchers").POST("", controllers.HandleVoucherFunc(container, "createVoucher"))
	auth.Group("/vouchers").POST("/:id/use", controllers.HandleVoucherFunc(container, "useVoucher"))
	auth.Group("/vouchers").PUT("/:id", controllers.HandleVoucherFunc(container, "updateVoucher"))
	auth.Group("/vouchers").PUT("/:id/toggle", controllers.HandleVoucherFunc(container, "toggleVoucher"))
	auth.Group("/vouchers").DELETE("/:id", controllers.HandleVoucherFunc(container, "deleteVoucher"))

	// 库存管理路由
	auth.Group("/inventories").GET("", controllers.HandleInventoryFunc(container, "getInventories"))
	auth.Group("/inventories").GET("/low-stock", controllers.HandleInventoryFunc(container, "getLowStock"))
	auth.Group("/inventories").GET("/out-of-stock", controllers.HandleInventoryFunc(container, "getOutOfStock"))
	auth.Group("/inventories").GET("/status/:status", controllers.HandleInventoryFunc(container, "getInventoriesByStatus"))
	auth.Group("/inventories").GET("/product/:product_id", controllers.HandleInventoryFunc(container, "getInventoryByProduct"))
	auth.Group("/inventories").GET("/:id", controllers.HandleInventoryFunc(container, "getInventory"))
	auth.Group("/inventories").POST("", controllers.HandleInventoryFunc(container, "createInventory"))
	auth.Group("/inventories").PUT("/:id", controllers.HandleInventoryFunc(container, "updateInventory"))
	auth.Group("/inventories").PUT("/:id/add-stock", controllers.HandleInventoryFunc(container, "addStock"))
	auth.Group("/inventories").PUT("/:id/remove-stock", controllers.HandleInventoryFunc(container, "removeStock"))
	auth.Group("/inventories").DELETE("/:id", controllers.HandleInventoryFunc(container, "deleteInventory"))

	// 订单管理路由
	auth.Group("/orders").GET("", controllers.HandleOrderFunc(container, "getOrders"))
	auth.Group("/orders").GET("/status/:status", controllers.HandleOrderFunc(container, "getOrdersByStatus"))
	auth.Group("/orders").GET("/:id", controllers.HandleOrderFunc(container, "getOrder"))
	auth.Group("/orders").PUT("/:id/status", controllers.HandleOrderFunc(container, "updateOrderStatus"))
	auth.Group("/orders").DELETE("/:id", controllers.HandleOrderFunc(container, "deleteOrder"))

	// 评价管理路由
	auth.Group("/reviews").GET("", controllers.HandleReviewFunc(container, "getReviews"))
	auth.Group("/reviews").GET("/pending", controllers.HandleReviewFunc(container, "getPendingReviews"))
	auth.Group("/reviews").GET("/:id", controllers.HandleReviewFunc(container, "getReview"))
	auth.Group("/reviews").PUT("/:id", controllers.HandleReviewFunc(container, "updateReview"))
	auth.Group("/reviews").PUT("/:id/approve", controllers.HandleReviewFunc(container, "approveReview"))
	auth.Group("/reviews").PUT("/:id/reject", controllers.HandleReviewFunc(container, "rejectReview"))
	auth.Group("/reviews").DELETE("/:id", controllers.HandleReviewFunc(container, "deleteReview"))

	// 促销管理路由
	auth.Group("/promotions").GET("", controllers.HandlePromotionFunc(container, "getPromotions"))
	auth.Group("/promotions").GET("/:id", controllers.HandlePromotionFunc(container, "getPromotion"))
	auth.Group("/promotions").POST("", controllers.HandlePromotionFunc(container, "createPromotion"))
	auth.Group("/promotions").POST("/:id/use", controllers.HandlePromotionFunc(container, "usePromotion"))
	auth.Group("/promotions").PUT("/:id", controllers.HandlePromotionFunc(container, "updatePromotion"))
	auth.Group("/promotions").PUT("/:id/toggle", controllers.HandlePromotionFunc(container, "togglePromotion"))
	auth.Group("/promotions").DELETE("/:id", controllers.HandlePromotionFunc(container, "deletePromotion"))

	// 管理后台路由
	auth.Group("/admin").GET("/stats", controllers.HandleAdminFunc(container, "getStats"))
	auth.Group("/admin").GET("/notifications", controllers.HandleAdminFunc(container, "getNotifications"))
	auth.Group("/admin").POST("/notifications", controllers.HandleAdminFunc(container, "sendNotification"))
	auth.Group("/admin").DELETE("/notifications/:id", controllers.HandleAdminFunc(container, "deleteNotification"))
}
