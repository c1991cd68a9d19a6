package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:       "用户不存在",
	ErrUsernameTaken:      "用户名已存在",
	ErrEmailTaken:         "邮箱已被使用",
	ErrInvalidCredentials: "用户名或密码错误",
	ErrPasswordIncorrect:  "旧密码错误",
	ErrResetTokenInvalid:  "重置码无效",
	ErrResetTokenExpired:  "重置码已过期",

	// 优惠券相关错误码
	ErrVoucherNotFound:   "优惠券不存在",
	ErrVoucherCodeTaken:  "券码已存在",
	ErrVoucherUsageLimit: "优惠券已达使用上限",

	// 库存相关错误码
	ErrInventoryNotFound: "库存记录不存在",
	ErrInsufficientStock: "库存不足",

	// 订单相关错误码
	ErrOrderNotFound: "订单不存在",

	// 评价相关错误码
	ErrReviewNotFound: "评价不存在",

	// 促销相关错误码
	ErrPromotionNotFound:   "促销活动不存在",
	ErrPromotionUsageLimit: "促销活动已达使用上限",

	// 通知相关错误码
	ErrNotificationNotFound: "通知不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrUsernameTaken:      StatusBadRequest,
	ErrEmailTaken:         StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrPasswordIncorrect:  StatusBadRequest,
	ErrResetTokenInvalid:  StatusBadRequest,
	ErrResetTokenExpired:  StatusBadRequest,

	// 优惠券相关错误码
	ErrVoucherNotFound:   StatusNotFound,
	ErrVoucherCodeTaken:  StatusBadRequest,
	ErrVoucherUsageLimit: StatusBadRequest,

	// 库存相关错误码
	ErrInventoryNotFound: StatusNotFound,
	ErrInsufficientStock: StatusBadRequest,

	// 订单相关错误码
	ErrOrderNotFound: StatusNotFound,

	// 评价相关错误码
	ErrReviewNotFound: StatusNotFound,

	// 促销相关错误码
	ErrPromotionNotFound:   StatusNotFound,
	ErrPromotionUsageLimit: StatusBadRequest,

	// 通知相关错误码
	ErrNotificationNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
