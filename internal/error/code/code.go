package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUsernameTaken - 400: 用户名已被占用.
	ErrUsernameTaken
	// ErrEmailTaken - 400: 邮箱已被占用.
	ErrEmailTaken
	// ErrInvalidCredentials - 401: 用户名或密码错误.
	ErrInvalidCredentials
	// ErrPasswordIncorrect - 400: 旧密码错误.
	ErrPasswordIncorrect
	// ErrResetTokenInvalid - 400: 重置码无效.
	ErrResetTokenInvalid
	// ErrResetTokenExpired - 400: 重置码已过期.
	ErrResetTokenExpired
)

// 优惠券相关错误码 (102xxx).
const (
	// ErrVoucherNotFound - 404: 优惠券不存在.
	ErrVoucherNotFound int = iota + 102000
	// ErrVoucherCodeTaken - 400: 券码已存在.
	ErrVoucherCodeTaken
	// ErrVoucherUsageLimit - 400: 优惠券已达使用上限.
	ErrVoucherUsageLimit
)

// 库存相关错误码 (103xxx).
const (
	// ErrInventoryNotFound - 404: 库存记录不存在.
	ErrInventoryNotFound int = iota + 103000
	// ErrInsufficientStock - 400: 库存不足.
	ErrInsufficientStock
)

// 订单相关错误码 (104xxx).
const (
	// ErrOrderNotFound - 404: 订单不存在.
	ErrOrderNotFound int = iota + 104000
)

// 评价相关错误码 (105xxx).
const (
	// ErrReviewNotFound - 404: 评价不存在.
	ErrReviewNotFound int = iota + 105000
)

// 促销相关错误码 (106xxx).
const (
	// ErrPromotionNotFound - 404: 促销活动不存在.
	ErrPromotionNotFound int = iota + 106000
	// ErrPromotionUsageLimit - 400: 促销活动已达使用上限.
	ErrPromotionUsageLimit
)

// 通知相关错误码 (107xxx).
const (
	// ErrNotificationNotFound - 404: 通知不存在.
	ErrNotificationNotFound int = iota + 107000
)

// 数据库相关错误码 (108xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 108000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
