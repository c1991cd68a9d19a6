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

// InterfaceOrderController 定义订单控制器接口
type InterfaceOrderController interface {
	GetOrders()
	GetOrder()
	GetOrdersByStatus()
	GetOrdersByPhone()
	CreateOrder()
	UpdateOrderStatus()
	DeleteOrder()
}

// OrderController 订单控制器
type OrderController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrderController 创建一个新的订单控制器
func NewOrderController(ctx *gin.Context, container *container.ServiceContainer) *OrderController {
	return &OrderController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerID      *uint   `json:"customer_id" example:"1"`
	CustomerName    string  `json:"customer_name" binding:"required" example:"张三"`
	Phone           string  `json:"phone" binding:"required" example:"13800138000"`
	Address         string  `json:"address" example:"上海市黄浦区"`
	PaymentMethod   string  `json:"payment_method" example:"cash"`
	TotalAmount     float64 `json:"total_amount" example:"188.5"`
	TransactionCode string  `json:"transaction_code" example:"TXN20260901001"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}

// HandleOrderFunc 返回一个处理订单请求的Gin处理函数
func HandleOrderFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrderController(ctx, container)

		switch method {
		case "getOrders":
			controller.GetOrders()
		case "getOrder":
			controller.GetOrder()
		case "getOrdersByStatus":
			controller.GetOrdersByStatus()
		case "getOrdersByPhone":
			controller.GetOrdersByPhone()
		case "createOrder":
			controller.CreateOrder()
		case "updateOrderStatus":
			controller.UpdateOrderStatus()
		case "deleteOrder":
			controller.DeleteOrder()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetOrders 获取订单列表
// @Summary      获取订单列表
// @Description  分页获取所有订单，按创建时间倒序
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /orders [get]
// @Security     BearerAuth
func (c *OrderController) GetOrders() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	orders, total, err := orderService.GetAllOrders(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      orders,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetOrder 获取订单详情
// @Summary      获取订单详情
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id} [get]
// @Security     BearerAuth
func (c *OrderController) GetOrder() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, err := orderService.GetOrderByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, order)
}

// GetOrdersByStatus 按状态查询订单
// @Summary      按状态查询订单
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        status path string true "订单状态"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /orders/status/{status} [get]
// @Security     BearerAuth
func (c *OrderController) GetOrdersByStatus() {
	status := c.Ctx.Param("status")
	if status == "" {
		response.ParamError(c.Ctx, "订单状态不能为空")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	orders, err := orderService.GetOrdersByStatus(status)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, orders)
}

// GetOrdersByPhone 按手机号查询订单
// @Summary      按手机号查询订单
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        phone path string true "手机号"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /orders/phone/{phone} [get]
func (c *OrderController) GetOrdersByPhone() {
	phone := c.Ctx.Param("phone")
	if phone == "" {
		response.ParamError(c.Ctx, "手机号不能为空")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	orders, err := orderService.GetOrdersByPhone(phone)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, orders)
}

// CreateOrder 创建订单
// @Summary      创建订单
// @Description  创建时间由服务端设置，渠道缺省为mobile
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /orders [post]
func (c *OrderController) CreateOrder() {
	var req CreateOrderRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Address:         req.Address,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		TransactionCode: req.TransactionCode,
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.CreateOrder(order); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{
		"success":  true,
		"order_id": order.ID,
		"message":  "订单创建成功",
	})
}

// UpdateOrderStatus 更新订单状态
// @Summary      更新订单状态
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body UpdateOrderStatusRequest true "状态参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id}/status [put]
// @Security     BearerAuth
func (c *OrderController) UpdateOrderStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, err := orderService.UpdateOrderStatus(uint(id), req.Status)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, order)
}

// DeleteOrder 删除订单
// @Summary      删除订单
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id} [delete]
// @Security     BearerAuth
func (c *OrderController) DeleteOrder() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的订单ID")
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.DeleteOrder(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "订单已删除"})
}
