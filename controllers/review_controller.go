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

// InterfaceReviewController 定义评价控制器接口
type InterfaceReviewController interface {
	GetReviews()
	GetReview()
	GetProductReviews()
	GetPendingReviews()
	CreateReview()
	UpdateReview()
	ApproveReview()
	RejectReview()
	MarkHelpful()
	MarkUnhelpful()
	DeleteReview()
}

// ReviewController 评价控制器
type ReviewController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReviewController 创建一个新的评价控制器
func NewReviewController(ctx *gin.Context, container *container.ServiceContainer) *ReviewController {
	return &ReviewController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	ProductID  uint   `json:"product_id" binding:"required" example:"1"`
	CustomerID uint   `json:"customer_id" binding:"required" example:"3"`
	Title      string `json:"title" example:"很甜"`
	Content    string `json:"content" binding:"required" example:"小朋友很喜欢，包装也好看"`
	Rating     int    `json:"rating" binding:"required" example:"5"`
}

// UpdateReviewRequest 更新评价请求
type UpdateReviewRequest struct {
	Title   string `json:"title" example:"很甜"`
	Content string `json:"content" example:"小朋友很喜欢"`
	Rating  *int   `json:"rating" example:"4"`
}

// HandleReviewFunc 返回一个处理评价请求的Gin处理函数
func HandleReviewFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReviewController(ctx, container)

		switch method {
		case "getReviews":
			controller.GetReviews()
		case "getReview":
			controller.GetReview()
		case "getProductReviews":
			controller.GetProductReviews()
		case "getPendingReviews":
			controller.GetPendingReviews()
		case "createReview":
			controller.CreateReview()
		case "updateReview":
			controller.UpdateReview()
		case "approveReview":
			controller.ApproveReview()
		case "rejectReview":
			controller.RejectReview()
		case "markHelpful":
			controller.MarkHelpful()
		case "markUnhelpful":
			controller.MarkUnhelpful()
		case "deleteReview":
			controller.DeleteReview()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetReviews 获取评价列表
// @Summary      获取评价列表
// @Description  分页获取所有评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [get]
// @Security     BearerAuth
func (c *ReviewController) GetReviews() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	reviews, total, err := reviewService.GetAllReviews(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      reviews,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// GetReview 获取评价详情
// @Summary      获取评价详情
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [get]
// @Security     BearerAuth
func (c *ReviewController) GetReview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的评价ID")
		return
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	review, err := reviewService.GetReviewByID(uint(id))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, review)
}

// GetProductReviews 获取商品的评价汇总
// @Summary      获取商品评价
// @Description  只返回审核通过的评价，附带平均分和星级分布
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        product_id path int true "商品ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /reviews/product/{product_id} [get]
func (c *ReviewController) GetProductReviews() {
	productID, err := strconv.ParseUint(c.Ctx.Param("product_id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的商品ID")
		return
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	summary, err := reviewService.GetProductReviews(uint(productID))
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, summary)
}

// GetPendingReviews 获取待审核评价
// @Summary      获取待审核评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews/pending [get]
// @Security     BearerAuth
func (c *ReviewController) GetPendingReviews() {
	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	reviews, err := reviewService.GetPendingReviews()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reviews)
}

// CreateReview 创建评价
// @Summary      创建评价
// @Description  新评价初始状态为待审核
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        request body CreateReviewRequest true "创建参数"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /reviews [post]
func (c *ReviewController) CreateReview() {
	var req CreateReviewRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	review := &models.Review{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Title:      req.Title,
		Content:    req.Content,
		Rating:     req.Rating,
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	if err := reviewService.CreateReview(review); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, review)
}

// UpdateReview 更新评价
// @Summary      更新评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Param        request body UpdateReviewRequest true "更新参数"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [put]
// @Security     BearerAuth
func (c *ReviewController) UpdateReview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的评价ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	review, err := reviewService.UpdateReview(uint(id), updates)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, review)
}

// ApproveReview 审核通过评价
// @Summary      审核通过评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id}/approve [put]
// @Security     BearerAuth
func (c *ReviewController) ApproveReview() {
	c.moderate(true)
}

// RejectReview 驳回评价
// @Summary      驳回评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id}/reject [put]
// @Security     BearerAuth
func (c *ReviewController) RejectReview() {
	c.moderate(false)
}

func (c *ReviewController) moderate(approve bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的评价ID")
		return
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	review, err := reviewService.ModerateReview(uint(id), approve)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, review)
}

// MarkHelpful 标记评价有用
// @Summary      标记评价有用
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id}/helpful [put]
func (c *ReviewController) MarkHelpful() {
	c.mark(true)
}

// MarkUnhelpful 标记评价无用
// @Summary      标记评价无用
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id}/unhelpful [put]
func (c *ReviewController) MarkUnhelpful() {
	c.mark(false)
}

func (c *ReviewController) mark(helpful bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的评价ID")
		return
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	review, err := reviewService.MarkHelpful(uint(id), helpful)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, review)
}

// DeleteReview 删除评价
// @Summary      删除评价
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reviews/{id} [delete]
// @Security     BearerAuth
func (c *ReviewController) DeleteReview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的评价ID")
		return
	}

	reviewService := c.Container.GetService("review").(services.InterfaceReviewService)
	if err := reviewService.DeleteReview(uint(id)); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "评价已删除"})
}
