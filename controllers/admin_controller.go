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

// InterfaceAdminController 定义管理后台控制器接口
type InterfaceAdminController interface {
	GetStats()
	SendNotification()
	GetNewNotifications()
	GetNotifications()
	DeleteNotification()
}

// AdminController 管理后台控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理后台控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// SendNotificationRequest 发布通知请求
type SendNotificationRequest struct {
	Title            string   `json:"title" binding:"required" example:"双十一大促"`
	Message          string   `json:"message" binding:"required" example:"全场糖果五折起"`
	Type             string   `json:"type" example:"promotion"`
	TargetUserPhones []string `json:"target_user_phones"`
	ImageURL         string   `json:"image_url" example:"/images/banner.png"`
	ActionURL        string   `json:"action_url" example:"/promotions/active"`
}

// HandleAdminFunc 返回一个处理管理后台请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		case "sendNotification":
			controller.SendNotification()
		case "getNewNotifications":
			controller.GetNewNotifications()
		case "getNotifications":
			controller.GetNotifications()
		case "deleteNotification":
			controller.DeleteNotification()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// GetStats 获取管理后台统计数据
// @Summary      获取统计数据
// @Description  商品/订单/客户数量和营收总额等汇总，结果短暂缓存
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (c *AdminController) GetStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetAdminStats()
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, stats)
}

// SendNotification 发布通知
// @Summary      发布通知
// @Description  不指定目标用户时广播给所有人
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body SendNotificationRequest true "通知内容"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/notifications [post]
// @Security     BearerAuth
func (c *AdminController) SendNotification() {
	var req SendNotificationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "请求参数不完整")
		return
	}

	notification := &models.Notification{
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
		ActionURL: req.ActionURL,
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.SendNotification(notification, req.TargetUserPhones); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, notification)
}

// GetNewNotifications 增量拉取新通知
// @Summary      拉取新通知
// @Description  返回since时间戳(毫秒)之后发布的通知，带phone时包含定向通知
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        since query int false "毫秒时间戳, 默认为0"
// @Param        phone query string false "用户手机号"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications/new [get]
func (c *AdminController) GetNewNotifications() {
	sinceMillis, _ := strconv.ParseInt(c.Ctx.DefaultQuery("since", "0"), 10, 64)
	phone := c.Ctx.Query("phone")

	since := time.UnixMilli(sinceMillis)

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, err := notificationService.GetNotificationsSince(since, phone)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"notifications": notifications,
		"server_time":   time.Now().UnixMilli(),
	})
}

// GetNotifications 获取通知历史
// @Summary      获取通知历史
// @Description  分页获取全部通知，按发送时间倒序
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        page_size query int false "每页条数, 默认为10"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/notifications [get]
// @Security     BearerAuth
func (c *AdminController) GetNotifications() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	notifications, total, err := notificationService.GetAllNotifications(page, pageSize)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"items":      notifications,
		"pagination": models.NewPaginationResult(int(total), page, pageSize),
	})
}

// DeleteNotification 删除通知
// @Summary      删除通知
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "通知ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/notifications/{id} [delete]
// @Security     BearerAuth
func (c *AdminController) DeleteNotification() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "无效的通知ID")
		return
	}

	notificationService := c.Container.GetService("notification").(services.InterfaceNotificationService)
	if err := notificationService.DeleteNotification(id); err != nil {
		respondError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "通知已删除"})
}
