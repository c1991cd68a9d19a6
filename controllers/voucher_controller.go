package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/internal/error/response"
	"candyshop-http-service/models"
	"candyshop-http-service/services"
	"candyshop-http-service/services/container"
)

// InterfaceVoucherController 定义优惠券控制器接口
type InterfaceVoucherController interface {
	ValidateVoucher()
	UseVoucher()
	GetVouchers()
	GetActiveVouchers()
	GetVoucher()
	GetVoucherByCode()
	CreateVoucher()
	UpdateVoucher()
	ToggleVoucher()
	DeleteVoucher()
}

// VoucherController 优惠券控制器
type VoucherController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVoucherController 创建一个新的优惠券控制器
func NewVoucherController(ctx *gin.Context, container *container.ServiceContainer) *VoucherController {
	return &VoucherController{
		Ctx:       ctx,
		Container: container,
	}
}

// ValidateVoucherRequest 券码校验请求
type ValidateVoucherRequest struct {
	Code string `json:"code" binding:"required" example:"SWEET10"`
	// 不标记required，零元订单(全额抵扣后)也要走校验流程
	OrderTotal float64 `json:"order_total" example:"200"`
}

// CreateVoucherRequest 创建优惠券请求
type CreateVoucherRequest struct {
	Code        string  `json:"code" binding:"required" example:"SWEET10"`
	Discount    float64 `json:"discount" binding:"required" example:"10"`
	Type        string  `json:"type" binding:"required" example:"percent"`
	Description string  `json:"description" example:"全场九折"`
	ExpiryDate  string  `json:"expiry_date" example:"2026-12-31"`
	MinOrder    *int    `json:"min_order" example:"100"`
	MaxUse      *int    `json:"max_use" example:"500"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateVoucherRequest 更新优惠券请求
type UpdateVoucherRequest struct {
	Code        string   `json:"code" example:"SWEET20"`
	Discount    *float64 `json:"discount" example:"20"`
	Type        string   `json:"type" example:"fixed"`
	Description string   `json:"description" example:"立减20元"`
	ExpiryDate  string   `json:"expiry_date" example:"2026-12-31"`
	MinOrder    *int     `json:"min_order" example:"150"`
	MaxUse      *int     `json:"max_use" example:"300"`
}

// HandleVoucherFunc 返回一个处理优惠券请求的Gin处理函数
func HandleVoucherFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVoucherController(ctx, container)

		switch method {
		case "validateVoucher":
			controller.ValidateVoucher()
		case "useVoucher":
			controller.UseVoucher()
		case "getVouchers":
			controller.GetVouchers()
		case "getActiveVouchers":
			controller.GetActiveVouchers()
		case "getVoucher":
			controller.GetVoucher()
		case "getVoucherByCode":
			controller.GetVoucherByCode()
		case "createVoucher":
			controller.CreateVoucher()
		case "updateVoucher":
			controller.UpdateVoucher()
		case "toggleVoucher":
			controller.ToggleVoucher()
		case "deleteVoucher":
			controller.DeleteVoucher()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// ValidateVoucher 校验券码
// @Summary      校验券码
// @Description  按顺序校验券码并计算折扣金额，校验结果在响应体里返回，不消耗使用次数
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        request body ValidateVoucherRequest true "校验参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /vouchers/validate [post]
func (c *VoucherController) ValidateVoucher() {
	var req ValidateVoucherRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	result, err := voucherService.Validate(req.Code, req.OrderTotal)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, result)
}

// UseVoucher 消费一次优惠券
// @Summary      使用优惠券
// @Description  使用次数加一，已达上限时返回错误
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        id path int true "优惠券ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/{id}/use [post]
func (c *VoucherController) UseVoucher() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的优惠券ID")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	if err := voucherService.Use(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "优惠券使用成功"})
}

// GetVouchers 获取优惠券列表
// @Summary      获取优惠券列表
// @Description  分页获取所有优惠券
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /vouchers [get]
// @Security     BearerAuth
func (c *VoucherController) GetVouchers() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	vouchers, total, err := voucherService.GetAllVouchers(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      vouchers,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetActiveVouchers 获取启用中的优惠券
// @Summary      获取启用中的优惠券
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /vouchers/active [get]
func (c *VoucherController) GetActiveVouchers() {
	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	vouchers, err := voucherService.GetActiveVouchers()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, vouchers)
}

// GetVoucher 获取优惠券详情
// @Summary      获取优惠券详情
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        id path int true "优惠券ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/{id} [get]
// @Security     BearerAuth
func (c *VoucherController) GetVoucher() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的优惠券ID")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	voucher, err := voucherService.GetVoucherByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, voucher)
}

// GetVoucherByCode 根据券码获取优惠券
// @Summary      根据券码获取优惠券
// @Description  券码大小写不敏感
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        code path string true "券码"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/code/{code} [get]
// @Security     BearerAuth
func (c *VoucherController) GetVoucherByCode() {
	code := c.Ctx.Param("code")
	if code == "" {
		response.ParamError(c.Ctx, "券码不能为空")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	voucher, err := voucherService.GetVoucherByCode(code)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, voucher)
}

// CreateVoucher 创建优惠券
// @Summary      创建优惠券
// @Description  券码落库前统一转为大写
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        request body CreateVoucherRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /vouchers [post]
// @Security     BearerAuth
func (c *VoucherController) CreateVoucher() {
	var req CreateVoucherRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	voucher := &models.Voucher{
		Code:        req.Code,
		Discount:    req.Discount,
		Type:        req.Type,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
		MinOrder:    req.MinOrder,
		MaxUse:      req.MaxUse,
		IsActive:    req.IsActive,
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	if err := voucherService.CreateVoucher(voucher); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, voucher)
}

// UpdateVoucher 更新优惠券
// @Summary      更新优惠券
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        id path int true "优惠券ID"
// @Param        request body UpdateVoucherRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/{id} [put]
// @Security     BearerAuth
func (c *VoucherController) UpdateVoucher() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的优惠券ID")
		return
	}

	var req UpdateVoucherRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	updates := make(map[string]interface{})
	if req.Code != "" {
		updates["code"] = req.Code
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.ExpiryDate != "" {
		updates["expiry_date"] = req.ExpiryDate
	}
	if req.MinOrder != nil {
		updates["min_order"] = *req.MinOrder
	}
	if req.MaxUse != nil {
		updates["max_use"] = *req.MaxUse
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	voucher, err := voucherService.UpdateVoucher(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, voucher)
}

// ToggleVoucher 切换优惠券启用状态
// @Summary      启用/停用优惠券
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        id path int true "优惠券ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/{id}/toggle [put]
// @Security     BearerAuth
func (c *VoucherController) ToggleVoucher() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的优惠券ID")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	voucher, err := voucherService.ToggleVoucher(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, voucher)
}

// DeleteVoucher 删除优惠券
// @Summary      删除优惠券
// @Tags         Voucher
// @Accept       json
// @Produce      json
// @Param        id path int true "优惠券ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /vouchers/{id} [delete]
// @Security     BearerAuth
func (c *VoucherController) DeleteVoucher() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的优惠券ID")
		return
	}

	voucherService := c.Container.GetService("voucher").(services.InterfaceVoucherService)
	if err := voucherService.DeleteVoucher(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "优惠券已删除"})
}
