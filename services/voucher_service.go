package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// VoucherValidationResult 是券码校验的结果。
// 校验未通过时只有 Valid 和 Message 有意义
type VoucherValidationResult struct {
	Valid          bool     `json:"valid"`
	Message        string   `json:"message"`
	DiscountAmount *float64 `json:"discount_amount,omitempty"`
	DiscountType   string   `json:"discount_type,omitempty"`
	DiscountValue  *float64 `json:"discount_value,omitempty"`
}

// InterfaceVoucherService 定义优惠券服务接口
type InterfaceVoucherService interface {
	Validate(code string, orderTotal float64) (*VoucherValidationResult, error)
	Use(id uint) error
	GetAllVouchers(page, pageSize int) ([]models.Voucher, int64, error)
	GetActiveVouchers() ([]models.Voucher, error)
	GetVoucherByID(id uint) (*models.Voucher, error)
	GetVoucherByCode(code string) (*models.Voucher, error)
	CreateVoucher(voucher *models.Voucher) error
	UpdateVoucher(id uint, updates map[string]interface{}) (*models.Voucher, error)
	ToggleVoucher(id uint) (*models.Voucher, error)
	DeleteVoucher(id uint) error
}

// VoucherService 提供优惠券相关的服务
type VoucherService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVoucherService 创建一个新的优惠券服务
func NewVoucherService(db *gorm.DB, cfg *config.Config) *VoucherService {
	return &VoucherService{
		DB:     db,
		Config: cfg,
	}
}

// Validate 按固定顺序校验券码并计算折扣金额，只读不修改使用次数。
// 校验顺序：存在性、启用状态、有效期、使用上限、最低消费。
// 任何一条不通过立即返回，后续规则不再评估
func (s *VoucherService) Validate(code string, orderTotal float64) (*VoucherValidationResult, error) {
	voucher, err := s.GetVoucherByCode(code)
	if err != nil {
		if errors.Is(err, ErrVoucherNotFound) {
			return &VoucherValidationResult{Valid: false, Message: "优惠券不存在"}, nil
		}
		return nil, err
	}

	if !voucher.Active() {
		return &VoucherValidationResult{Valid: false, Message: "优惠券未启用"}, nil
	}

	// 有效期按日期字符串比较，YYYY-MM-DD 格式下字典序等价于时间序
	today := time.Now().Format("2006-01-02")
	if voucher.ExpiryDate != "" && voucher.ExpiryDate < today {
		return &VoucherValidationResult{Valid: false, Message: "优惠券已过期"}, nil
	}

	if voucher.MaxUse != nil && voucher.UsedCount >= *voucher.MaxUse {
		return &VoucherValidationResult{Valid: false, Message: "优惠券已达使用上限"}, nil
	}

	if voucher.MinOrder != nil && orderTotal < float64(*voucher.MinOrder) {
		return &VoucherValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("订单金额不满足最低消费 %d 元", *voucher.MinOrder),
		}, nil
	}

	// percent 按订单金额的百分比计算，fixed 原样返回折扣值，不与订单金额封顶
	var amount float64
	if voucher.Type == models.DiscountTypePercent {
		amount = orderTotal * voucher.Discount / 100
	} else {
		amount = voucher.Discount
	}

	discountValue := voucher.Discount
	return &VoucherValidationResult{
		Valid:          true,
		Message:        "优惠券有效",
		DiscountAmount: &amount,
		DiscountType:   voucher.Type,
		DiscountValue:  &discountValue,
	}, nil
}

// Use 消费一次优惠券。使用上限检查和计数递增在同一条UPDATE内完成，
// 并发重复提交时最多只有一次生效
func (s *VoucherService) Use(id uint) error {
	voucher, err := s.GetVoucherByID(id)
	if err != nil {
		return err
	}

	query := s.DB.Model(&models.Voucher{}).Where("id = ?", id)
	if voucher.MaxUse != nil {
		query = query.Where("used_count < ?", *voucher.MaxUse)
	}

	result := query.Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoucherUsageLimit
	}
	return nil
}

// GetAllVouchers 获取所有优惠券，支持分页
func (s *VoucherService) GetAllVouchers(page, pageSize int) ([]models.Voucher, int64, error) {
	var vouchers []models.Voucher
	var total int64

	if err := s.DB.Model(&models.Voucher{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&vouchers).Error; err != nil {
		return nil, 0, err
	}

	return vouchers, total, nil
}

// GetActiveVouchers 获取所有启用中的优惠券
func (s *VoucherService) GetActiveVouchers() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	if err := s.DB.Where("is_active = ?", true).Find(&vouchers).Error; err != nil {
		return nil, err
	}
	return vouchers, nil
}

// GetVoucherByID 根据ID获取优惠券
func (s *VoucherService) GetVoucherByID(id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := s.DB.First(&voucher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return &voucher, nil
}

// GetVoucherByCode 根据券码获取优惠券，查询前先做大写归一化
func (s *VoucherService) GetVoucherByCode(code string) (*models.Voucher, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var voucher models.Voucher
	if err := s.DB.Where("code = ?", normalized).First(&voucher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return &voucher, nil
}

// CreateVoucher 创建新优惠券
func (s *VoucherService) CreateVoucher(voucher *models.Voucher) error {
	// 验证券码唯一性
	normalized := strings.ToUpper(strings.TrimSpace(voucher.Code))
	var count int64
	if err := s.DB.Model(&models.Voucher{}).Where("code = ?", normalized).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrVoucherCodeTaken
	}

	if voucher.Type != models.DiscountTypePercent && voucher.Type != models.DiscountTypeFixed {
		return NewValidationError("折扣类型必须为 percent 或 fixed")
	}

	return s.DB.Create(voucher).Error
}

// UpdateVoucher 更新优惠券信息
func (s *VoucherService) UpdateVoucher(id uint, updates map[string]interface{}) (*models.Voucher, error) {
	voucher, err := s.GetVoucherByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新券码，需要检查唯一性
	if code, ok := updates["code"].(string); ok {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if normalized != voucher.Code {
			var count int64
			if err := s.DB.Model(&models.Voucher{}).Where("code = ? AND id != ?", normalized, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrVoucherCodeTaken
			}
		}
		updates["code"] = normalized
	}

	if t, ok := updates["type"].(string); ok {
		if t != models.DiscountTypePercent && t != models.DiscountTypeFixed {
			return nil, NewValidationError("折扣类型必须为 percent 或 fixed")
		}
	}

	if err := s.DB.Model(voucher).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetVoucherByID(id)
}

// ToggleVoucher 切换优惠券启用状态
func (s *VoucherService) ToggleVoucher(id uint) (*models.Voucher, error) {
	voucher, err := s.GetVoucherByID(id)
	if err != nil {
		return nil, err
	}

	next := !voucher.Active()
	if err := s.DB.Model(voucher).Update("is_active", next).Error; err != nil {
		return nil, err
	}

	return s.GetVoucherByID(id)
}

// DeleteVoucher 删除优惠券
func (s *VoucherService) DeleteVoucher(id uint) error {
	result := s.DB.Delete(&models.Voucher{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoucherNotFound
	}
	return nil
}
