package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/internal/error/response"
	"candyshop-http-service/models"
	"candyshop-http-service/services"
	"candyshop-http-service/services/container"
)

// InterfacePromotionController 定义促销控制器接口
type InterfacePromotionController interface {
	GetPromotions()
	GetActivePromotions()
	GetPromotionsByType()
	GetPromotion()
	GetPromotionByCode()
	CreatePromotion()
	UpdatePromotion()
	TogglePromotion()
	UsePromotion()
	DeletePromotion()
}

// PromotionController 促销控制器
type PromotionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPromotionController 创建一个新的促销控制器
func NewPromotionController(ctx *gin.Context, container *container.ServiceContainer) *PromotionController {
	return &PromotionController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreatePromotionRequest 创建促销活动请求
type CreatePromotionRequest struct {
	Code          string     `json:"code" binding:"required" example:"XMAS2026"`
	Name          string     `json:"name" binding:"required" example:"圣诞特惠"`
	Description   string     `json:"description" example:"圣诞全场八折"`
	DiscountType  string     `json:"discount_type" example:"percent"`
	DiscountValue float64    `json:"discount_value" example:"20"`
	MaxDiscount   *float64   `json:"max_discount" example:"100"`
	MinPurchase   *float64   `json:"min_purchase" example:"50"`
	UsageLimit    *int       `json:"usage_limit" example:"1000"`
	PromotionType string     `json:"promotion_type" example:"seasonal"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// UpdatePromotionRequest 更新促销活动请求
type UpdatePromotionRequest struct {
	Name          string     `json:"name" example:"圣诞特惠"`
	Description   string     `json:"description" example:"圣诞全场八折"`
	DiscountValue *float64   `json:"discount_value" example:"25"`
	MaxDiscount   *float64   `json:"max_discount" example:"120"`
	MinPurchase   *float64   `json:"min_purchase" example:"60"`
	UsageLimit    *int       `json:"usage_limit" example:"1500"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// HandlePromotionFunc 返回一个处理促销请求的Gin处理函数
func HandlePromotionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPromotionController(ctx, container)

		switch method {
		case "getPromotions":
			controller.GetPromotions()
		case "getActivePromotions":
			controller.GetActivePromotions()
		case "getPromotionsByType":
			controller.GetPromotionsByType()
		case "getPromotion":
			controller.GetPromotion()
		case "getPromotionByCode":
			controller.GetPromotionByCode()
		case "createPromotion":
			controller.CreatePromotion()
		case "updatePromotion":
			controller.UpdatePromotion()
		case "togglePromotion":
			controller.TogglePromotion()
		case "usePromotion":
			controller.UsePromotion()
		case "deletePromotion":
			controller.DeletePromotion()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetPromotions 获取促销活动列表
// @Summary      获取促销活动列表
// @Description  分页获取所有促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /promotions [get]
// @Security     BearerAuth
func (c *PromotionController) GetPromotions() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotions, total, err := promotionService.GetAllPromotions(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      promotions,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetActivePromotions 获取当前有效的促销活动
// @Summary      获取当前有效的促销活动
// @Description  启用中且处于时间窗口内的活动，结果短暂缓存
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /promotions/active [get]
func (c *PromotionController) GetActivePromotions() {
	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotions, err := promotionService.GetActivePromotions()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotions)
}

// GetPromotionsByType 按类型查询促销活动
// @Summary      按类型查询促销活动
// @Description  类型取值: flash_sale, seasonal, discount
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        type path string true "活动类型"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /promotions/type/{type} [get]
func (c *PromotionController) GetPromotionsByType() {
	promotionType := c.Ctx.Param("type")
	if promotionType == "" {
		response.ParamError(c.Ctx, "活动类型不能为空")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotions, err := promotionService.GetPromotionsByType(promotionType)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotions)
}

// GetPromotion 获取促销活动详情
// @Summary      获取促销活动详情
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/{id} [get]
// @Security     BearerAuth
func (c *PromotionController) GetPromotion() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的活动ID")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotion, err := promotionService.GetPromotionByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotion)
}

// GetPromotionByCode 根据活动码获取促销活动
// @Summary      根据活动码获取促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        code path string true "活动码"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/code/{code} [get]
func (c *PromotionController) GetPromotionByCode() {
	code := c.Ctx.Param("code")
	if code == "" {
		response.ParamError(c.Ctx, "活动码不能为空")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotion, err := promotionService.GetPromotionByCode(code)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotion)
}

// CreatePromotion 创建促销活动
// @Summary      创建促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        request body CreatePromotionRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /promotions [post]
// @Security     BearerAuth
func (c *PromotionController) CreatePromotion() {
	var req CreatePromotionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	promotion := &models.Promotion{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MaxDiscount:   req.MaxDiscount,
		MinPurchase:   req.MinPurchase,
		UsageLimit:    req.UsageLimit,
		PromotionType: req.PromotionType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	if err := promotionService.CreatePromotion(promotion); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, promotion)
}

// UpdatePromotion 更新促销活动
// @Summary      更新促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Param        request body UpdatePromotionRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/{id} [put]
// @Security     BearerAuth
func (c *PromotionController) UpdatePromotion() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的活动ID")
		return
	}

	var req UpdatePromotionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.DiscountValue != nil {
		updates["discount_value"] = *req.DiscountValue
	}
	if req.MaxDiscount != nil {
		updates["max_discount"] = *req.MaxDiscount
	}
	if req.MinPurchase != nil {
		updates["min_purchase"] = *req.MinPurchase
	}
	if req.UsageLimit != nil {
		updates["usage_limit"] = *req.UsageLimit
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotion, err := promotionService.UpdatePromotion(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotion)
}

// TogglePromotion 切换促销活动启用状态
// @Summary      启用/停用促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/{id}/toggle [put]
// @Security     BearerAuth
func (c *PromotionController) TogglePromotion() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的活动ID")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	promotion, err := promotionService.TogglePromotion(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, promotion)
}

// UsePromotion 消费一次促销名额
// @Summary      使用促销活动
// @Description  使用次数加一，已达上限时返回错误
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/{id}/use [post]
func (c *PromotionController) UsePromotion() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的活动ID")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	if err := promotionService.UsePromotion(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "促销活动使用成功"})
}

// DeletePromotion 删除促销活动
// @Summary      删除促销活动
// @Tags         Promotion
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /promotions/{id} [delete]
// @Security     BearerAuth
func (c *PromotionController) DeletePromotion() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的活动ID")
		return
	}

	promotionService := c.Container.GetService("promotion").(services.InterfacePromotionService)
	if err := promotionService.DeletePromotion(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "促销活动已删除"})
}
