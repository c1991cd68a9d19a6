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

// InterfaceProductController 定义商品控制器接口
type InterfaceProductController interface {
	GetProducts()
	GetProduct()
	GetProductsByCategory()
	CreateProduct()
	UpdateProduct()
	DeleteProduct()
}

// ProductController 商品控制器
type ProductController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProductController 创建一个新的商品控制器
func NewProductController(ctx *gin.Context, container *container.ServiceContainer) *ProductController {
	return &ProductController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"彩虹棒棒糖"`
	Description string  `json:"description" example:"七彩水果味棒棒糖"`
	Price       float64 `json:"price" binding:"required" example:"5.5"`
	Quantity    int     `json:"quantity" example:"100"`
	Image       string  `json:"image" example:"/images/lollipop.png"`
	CategoryID  *uint   `json:"category_id" example:"1"`
	BrandID     *uint   `json:"brand_id" example:"2"`
}

// UpdateProductRequest 更新商品请求
type UpdateProductRequest struct {
	Name        string   `json:"name" example:"彩虹棒棒糖"`
	Description string   `json:"description" example:"七彩水果味棒棒糖"`
	Price       *float64 `json:"price" example:"6"`
	Image       string   `json:"image" example:"/images/lollipop.png"`
	CategoryID  *uint    `json:"category_id" example:"1"`
	Status      *int     `json:"status" example:"1"`
}

// HandleProductFunc 返回一个处理商品请求的Gin处理函数
func HandleProductFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProductController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "getProduct":
			controller.GetProduct()
		case "getProductsByCategory":
			controller.GetProductsByCategory()
		case "createProduct":
			controller.CreateProduct()
		case "updateProduct":
			controller.UpdateProduct()
		case "deleteProduct":
			controller.DeleteProduct()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetProducts 获取商品列表
// @Summary      获取商品列表
// @Description  分页获取所有商品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /products [get]
func (c *ProductController) GetProducts() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	products, total, err := productService.GetAllProducts(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      products,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetProduct 获取商品详情
// @Summary      获取商品详情
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [get]
func (c *ProductController) GetProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的商品ID")
		return
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	product, err := productService.GetProductByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, product)
}

// GetProductsByCategory 按分类查询商品
// @Summary      按分类查询商品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        category_id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /products/category/{category_id} [get]
func (c *ProductController) GetProductsByCategory() {
	categoryID, err := strconv.ParseUint(c.Ctx.Param("category_id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的分类ID")
		return
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	products, err := productService.GetProductsByCategory(uint(categoryID))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, products)
}

// CreateProduct 创建商品
// @Summary      创建商品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /products [post]
// @Security     BearerAuth
func (c *ProductController) CreateProduct() {
	var req CreateProductRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Status:      1,
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.CreateProduct(product); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, product)
}

// UpdateProduct 更新商品
// @Summary      更新商品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body UpdateProductRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [put]
// @Security     BearerAuth
func (c *ProductController) UpdateProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的商品ID")
		return
	}

	var req UpdateProductRequest
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	product, err := productService.UpdateProduct(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, product)
}

// DeleteProduct 删除商品
// @Summary      删除商品
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func (c *ProductController) DeleteProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的商品ID")
		return
	}

	productService := c.Container.GetService("product").(services.InterfaceProductService)
	if err := productService.DeleteProduct(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "商品已删除"})
}
