package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/internal/error/response"
	"candyshop-http-service/services/container"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "status":
			controller.Status()
		case "testConnection":
			controller.TestConnection()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Ping 健康检查端点
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Status 汇报数据库连通性和数据表清单
// @Summary      服务健康状态
// @Description  检查数据库连接并列出当前数据表
// @Tags         Health
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /health/status [get]
func (c *HealthController) Status() {
	db := c.Container.GetDB()

	status := gin.H{
		"service":   "candyshop-http-service",
		"time":      time.Now().Format(time.RFC3339),
		"database":  "up",
		"tables":    []string{},
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "down"
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "数据库连接异常",
			"data":    status,
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE()").
		Scan(&tables).Error; err == nil {
		status["tables"] = tables
	}

	response.Success(c.Ctx, status)
}

// TestConnection 执行一次最小查询验证数据库可用
// @Summary      数据库连接测试
// @Tags         Health
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /health/test-connection [get]
func (c *HealthController) TestConnection() {
	db := c.Container.GetDB()

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "数据库查询失败",
			"data":    nil,
		})
		return
	}

	response.Success(c.Ctx, gin.H{"message": "数据库连接正常"})
}
