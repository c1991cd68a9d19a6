package services

import "errors"

// 预期内的业务失败以哨兵错误返回，控制器用 errors.Is 将其映射到统一错误码；
// 其余错误一律视为意外故障，由边界层转成500类响应
var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUsernameTaken      = errors.New("用户名已存在")
	ErrEmailTaken         = errors.New("邮箱已被使用")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrPasswordIncorrect  = errors.New("旧密码错误")
	ErrResetTokenInvalid  = errors.New("重置码无效")
	ErrResetTokenExpired  = errors.New("重置码已过期")
	ErrTokenInvalid       = errors.New("访问令牌无效或已过期")

	ErrVoucherNotFound   = errors.New("优惠券不存在")
	ErrVoucherCodeTaken  = errors.New("券码已存在")
	ErrVoucherUsageLimit = errors.New("优惠券已达使用上限")

	ErrInventoryNotFound = errors.New("库存记录不存在")
	ErrInsufficientStock = errors.New("库存不足")

	ErrOrderNotFound = errors.New("订单不存在")

	ErrProductNotFound  = errors.New("商品不存在")
	ErrCategoryNotFound = errors.New("分类不存在")

	ErrReviewNotFound = errors.New("评价不存在")

	ErrPromotionNotFound   = errors.New("促销活动不存在")
	ErrPromotionUsageLimit = errors.New("促销活动已达使用上限")

	ErrNotificationNotFound = errors.New("通知不存在")
)

// ValidationError 表示用户可修正的输入校验失败，
// 消息来自第一条未通过的规则
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError 创建一个校验失败错误
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// AsValidationError 判断错误是否为输入校验失败
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
