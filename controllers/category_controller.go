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

// InterfaceCategoryController 定义分类控制器接口
type InterfaceCategoryController interface {
	GetCategories()
	GetCategory()
	CreateCategory()
	UpdateCategory()
	DeleteCategory()
}

// CategoryController 分类控制器
type CategoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoryController 创建一个新的分类控制器
func NewCategoryController(ctx *gin.Context, container *container.ServiceContainer) *CategoryController {
	return &CategoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CategoryRequest 分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"硬糖"`
}

// HandleCategoryFunc 返回一个处理分类请求的Gin处理函数
func HandleCategoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoryController(ctx, container)

		switch method {
		case "getCategories":
			controller.GetCategories()
		case "getCategory":
			controller.GetCategory()
		case "createCategory":
			controller.CreateCategory()
		case "updateCategory":
			controller.UpdateCategory()
		case "deleteCategory":
			controller.DeleteCategory()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetCategories 获取分类列表
// @Summary      获取分类列表
// @Tags         Category
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (c *CategoryController) GetCategories() {
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	categories, err := categoryService.GetAllCategories()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, categories)
}

// GetCategory 获取分类详情
// @Summary      获取分类详情
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [get]
func (c *CategoryController) GetCategory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的分类ID")
		return
	}

	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	category, err := categoryService.GetCategoryByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, category)
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        request body CategoryRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /categories [post]
// @Security     BearerAuth
func (c *CategoryController) CreateCategory() {
	var req CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	category := &models.Category{Name: req.Name}

	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	if err := categoryService.CreateCategory(category); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, category)
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body CategoryRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (c *CategoryController) UpdateCategory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的分类ID")
		return
	}

	var req CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	category, err := categoryService.UpdateCategory(uint(id), req.Name)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, category)
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  分类下仍有商品时拒绝删除
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (c *CategoryController) DeleteCategory() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的分类ID")
		return
	}

	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)
	if err := categoryService.DeleteCategory(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "分类已删除"})
}
