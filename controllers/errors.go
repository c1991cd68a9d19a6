package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"candyshop-http-service/internal/error/code"
	"candyshop-http-service/internal/error/response"
	"candyshop-http-service/services"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"101003"`
	Message string      `json:"message" example:"用户名或密码错误"`
	Data    interface{} `json:"data"`
}

// 哨兵错误到业务错误码的映射表
var sentinelCodeMap = []struct {
	err  error
	code int
}{
	{services.ErrUserNotFound, code.ErrUserNotFound},
	{services.ErrUsernameTaken, code.ErrUsernameTaken},
	{services.ErrEmailTaken, code.ErrEmailTaken},
	{services.ErrInvalidCredentials, code.ErrInvalidCredentials},
	{services.ErrPasswordIncorrect, code.ErrPasswordIncorrect},
	{services.ErrResetTokenInvalid, code.ErrResetTokenInvalid},
	{services.ErrResetTokenExpired, code.ErrResetTokenExpired},
	{services.ErrTokenInvalid, code.ErrTokenInvalid},
	{services.ErrVoucherNotFound, code.ErrVoucherNotFound},
	{services.ErrVoucherCodeTaken, code.ErrVoucherCodeTaken},
	{services.ErrVoucherUsageLimit, code.ErrVoucherUsageLimit},
	{services.ErrInventoryNotFound, code.ErrInventoryNotFound},
	{services.ErrInsufficientStock, code.ErrInsufficientStock},
	{services.ErrOrderNotFound, code.ErrOrderNotFound},
	{services.ErrProductNotFound, code.ErrRecordNotFound},
	{services.ErrCategoryNotFound, code.ErrRecordNotFound},
	{services.ErrReviewNotFound, code.ErrReviewNotFound},
	{services.ErrPromotionNotFound, code.ErrPromotionNotFound},
	{services.ErrPromotionUsageLimit, code.ErrPromotionUsageLimit},
	{services.ErrNotificationNotFound, code.ErrNotificationNotFound},
}

// respondError 将服务层错误翻译成统一响应：
// 校验失败原样透出第一条规则的消息，哨兵错误映射到业务错误码，
// 其余一律按未知错误返回500
func respondError(ctx *gin.Context, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		response.ParamError(ctx, ve.Msg)
		return
	}

	for _, m := range sentinelCodeMap {
		if errors.Is(err, m.err) {
			response.FailWithMessage(ctx, m.code, err.Error(), nil)
			return
		}
	}

	response.ServerError(ctx)
}
