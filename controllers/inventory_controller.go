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

// InterfaceInventoryController 定义库存控制器接口
type InterfaceInventoryController interface {
	GetInventories()
	GetInventory()
	GetInventoryByProduct()
	GetInventoriesByStatus()
	GetLowStock()
	GetOutOfStock()
	CreateInventory()
	UpdateInventory()
	AddStock()
	RemoveStock()
	DeleteInventory()
}

// InventoryController 库存控制器
type InventoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInventoryController 创建一个新的库存控制器
func NewInventoryController(ctx *gin.Context, container *container.ServiceContainer) *InventoryController {
	return &InventoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateInventoryRequest 创建库存记录请求
type CreateInventoryRequest struct {
	ProductID       uint `json:"product_id" binding:"required" example:"1"`
	QuantityInStock int  `json:"quantity_in_stock" example:"120"`
	ReorderLevel    int  `json:"reorder_level" example:"10"`
	ReorderQuantity int  `json:"reorder_quantity" example:"50"`
}

// UpdateInventoryRequest 更新库存记录请求
type UpdateInventoryRequest struct {
	QuantityInStock *int   `json:"quantity_in_stock" example:"80"`
	ReorderLevel    *int   `json:"reorder_level" example:"15"`
	ReorderQuantity *int   `json:"reorder_quantity" example:"60"`
	UpdatedReason   string `json:"updated_reason" example:"盘点修正"`
}

// StockChangeRequest 出入库请求
type StockChangeRequest struct {
	Quantity int    `json:"quantity" binding:"required" example:"30"`
	Reason   string `json:"reason" example:"供应商补货"`
}

// HandleInventoryFunc 返回一个处理库存请求的Gin处理函数
func HandleInventoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInventoryController(ctx, container)

		switch method {
		case "getInventories":
			controller.GetInventories()
		case "getInventory":
			controller.GetInventory()
		case "getInventoryByProduct":
			controller.GetInventoryByProduct()
		case "getInventoriesByStatus":
			controller.GetInventoriesByStatus()
		case "getLowStock":
			controller.GetLowStock()
		case "getOutOfStock":
			controller.GetOutOfStock()
		case "createInventory":
			controller.CreateInventory()
		case "updateInventory":
			controller.UpdateInventory()
		case "addStock":
			controller.AddStock()
		case "removeStock":
			controller.RemoveStock()
		case "deleteInventory":
			controller.DeleteInventory()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetInventories 获取库存列表
// @Summary      获取库存列表
// @Description  分页获取所有库存记录
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /inventories [get]
// @Security     BearerAuth
func (c *InventoryController) GetInventories() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventories, total, err := inventoryService.GetAllInventories(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      inventories,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetInventory 获取库存详情
// @Summary      获取库存详情
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "库存记录ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/{id} [get]
// @Security     BearerAuth
func (c *InventoryController) GetInventory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的库存记录ID")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventory, err := inventoryService.GetInventoryByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventory)
}

// GetInventoryByProduct 根据商品获取库存
// @Summary      根据商品获取库存
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        product_id path int true "商品ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/product/{product_id} [get]
// @Security     BearerAuth
func (c *InventoryController) GetInventoryByProduct() {
	productID, err := strconv.ParseUint(c.Ctx.Param("product_id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的商品ID")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventory, err := inventoryService.GetInventoryByProductID(uint(productID))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventory)
}

// GetInventoriesByStatus 按库存状态查询
// @Summary      按库存状态查询
// @Description  状态取值: in_stock, low_stock, out_of_stock
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        status path string true "库存状态"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /inventories/status/{status} [get]
// @Security     BearerAuth
func (c *InventoryController) GetInventoriesByStatus() {
	status := c.Ctx.Param("status")
	if status != models.StockStatusIn && status != models.StockStatusLow && status != models.StockStatusOut {
		response.ParamError(c.Ctx, "无效的库存状态")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventories, err := inventoryService.GetInventoriesByStatus(status)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventories)
}

// GetLowStock 获取低库存记录
// @Summary      获取低库存记录
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /inventories/low-stock [get]
// @Security     BearerAuth
func (c *InventoryController) GetLowStock() {
	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventories, err := inventoryService.GetLowStock()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventories)
}

// GetOutOfStock 获取缺货记录
// @Summary      获取缺货记录
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /inventories/out-of-stock [get]
// @Security     BearerAuth
func (c *InventoryController) GetOutOfStock() {
	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventories, err := inventoryService.GetOutOfStock()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventories)
}

// CreateInventory 创建库存记录
// @Summary      创建库存记录
// @Description  每个商品只允许一条库存记录，状态在落库时派生
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        request body CreateInventoryRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /inventories [post]
// @Security     BearerAuth
func (c *InventoryController) CreateInventory() {
	var req CreateInventoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	inventory := &models.Inventory{
		ProductID:       req.ProductID,
		QuantityInStock: req.QuantityInStock,
		ReorderLevel:    req.ReorderLevel,
		ReorderQuantity: req.ReorderQuantity,
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	if err := inventoryService.CreateInventory(inventory); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, inventory)
}

// UpdateInventory 更新库存记录
// @Summary      更新库存记录
// @Description  数量或阈值变化时状态同步重算
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "库存记录ID"
// @Param        request body UpdateInventoryRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/{id} [put]
// @Security     BearerAuth
func (c *InventoryController) UpdateInventory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的库存记录ID")
		return
	}

	var req UpdateInventoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	updates := make(map[string]interface{})
	if req.QuantityInStock != nil {
		updates["quantity_in_stock"] = *req.QuantityInStock
	}
	if req.ReorderLevel != nil {
		updates["reorder_level"] = *req.ReorderLevel
	}
	if req.ReorderQuantity != nil {
		updates["reorder_quantity"] = *req.ReorderQuantity
	}
	if req.UpdatedReason != "" {
		updates["updated_reason"] = req.UpdatedReason
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventory, err := inventoryService.UpdateInventory(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventory)
}

// AddStock 入库
// @Summary      入库
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "库存记录ID"
// @Param        request body StockChangeRequest true "入库参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/{id}/add-stock [put]
// @Security     BearerAuth
func (c *InventoryController) AddStock() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的库存记录ID")
		return
	}

	var req StockChangeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventory, err := inventoryService.AddStock(uint(id), req.Quantity, req.Reason)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventory)
}

// RemoveStock 出库
// @Summary      出库
// @Description  库存不足时返回400
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "库存记录ID"
// @Param        request body StockChangeRequest true "出库参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/{id}/remove-stock [put]
// @Security     BearerAuth
func (c *InventoryController) RemoveStock() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的库存记录ID")
		return
	}

	var req StockChangeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	inventory, err := inventoryService.RemoveStock(uint(id), req.Quantity, req.Reason)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, inventory)
}

// DeleteInventory 删除库存记录
// @Summary      删除库存记录
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "库存记录ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /inventories/{id} [delete]
// @Security     BearerAuth
func (c *InventoryController) DeleteInventory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的库存记录ID")
		return
	}

	inventoryService := c.Container.GetService("inventory").(services.InterfaceInventoryService)
	if err := inventoryService.DeleteInventory(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "库存记录已删除"})
}
