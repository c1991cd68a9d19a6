package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/internal/error/response"
	"candyshop-http-service/models"
	"candyshop-http-service/services"
	"candyshop-http-service/services/container"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Register()
	ForgotPassword()
	VerifyResetToken()
	ResetPassword()
}

// AuthController 处理登录注册和密码找回请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"Admin123"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"candy_lover"`
	Password string `json:"password" binding:"required" example:"Sweet123"`
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	FullName string `json:"full_name" binding:"required" example:"张三"`
	Phone    string `json:"phone" example:"13800138000"`
	Address  string `json:"address" example:"上海市黄浦区"`
	Role     string `json:"role" example:"customer"`
}

// ForgotPasswordRequest 找回密码请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" example:"user@example.com"`
}

// VerifyResetTokenRequest 重置码校验请求
type VerifyResetTokenRequest struct {
	Token string `json:"token" binding:"required" example:"042517"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" example:"042517"`
	NewPassword string `json:"new_password" binding:"required" example:"Sweet456"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "forgotPassword":
			controller.ForgotPassword()
		case "verifyResetToken":
			controller.VerifyResetToken()
		case "resetPassword":
			controller.ResetPassword()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Login 处理用户登录
// @Summary      用户登录
// @Description  校验用户名和密码，成功后返回JWT令牌和用户信息
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录请求参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, err := authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":     token,
		"user_id":   user.ID,
		"username":  user.Username,
		"role":      user.Role,
		"role_id":   user.RoleID,
		"full_name": user.FullName,
	})
}

// Register 处理用户注册
// @Summary      用户注册
// @Description  按顺序校验注册信息，任何一条不通过立即返回该条的提示
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册请求参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	candidate := &models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	user, err := authService.Register(candidate)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
		"role_id":   user.RoleID,
	})
}

// ForgotPassword 处理找回密码
// @Summary      找回密码
// @Description  为邮箱对应的账户签发重置码并通过邮件发送，重置码不出现在响应里
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "找回密码请求参数"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/forgot-password [post]
func (c *AuthController) ForgotPassword() {
	var req ForgotPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	message, err := authService.ForgotPassword(req.Email)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": message})
}

// VerifyResetToken 校验重置码
// @Summary      校验重置码
// @Description  只读检查重置码是否有效，不会使重置码失效
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body VerifyResetTokenRequest true "重置码校验参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/verify-reset-token [post]
func (c *AuthController) VerifyResetToken() {
	var req VerifyResetTokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	message, err := authService.VerifyResetToken(req.Token)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": message})
}

// ResetPassword 重置密码
// @Summary      重置密码
// @Description  校验重置码和新密码强度，成功后清除重置码
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "重置密码参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/reset-password [post]
func (c *AuthController) ResetPassword() {
	var req ResetPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	message, err := authService.ResetPassword(req.Token, req.NewPassword)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": message})
}
