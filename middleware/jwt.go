package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
	"candyshop-http-service/services"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			return
		}

		// 检查是否是管理员
		if !strings.EqualFold(claims.Role, models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "权限不足：需要管理员角色",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateUser 验证登录用户权限，管理员和普通客户都可以访问
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthHeader(c)
		if !ok {
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// parseAuthHeader 提取并校验授权头里的令牌，失败时直接写出401响应
func parseAuthHeader(c *gin.Context) (*services.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "缺少Authorization请求头",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	claims, err := jwtService.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "无效的认证令牌",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	return claims, true
}
