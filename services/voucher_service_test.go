package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"candyshop-http-service/models"
)

func newVoucherService(t *testing.T) *VoucherService {
	t.Helper()
	return NewVoucherService(newTestDB(t), newTestConfig())
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestValidateUnknownCode(t *testing.T) {
	s := newVoucherService(t)

	result, err := s.Validate("NOSUCH", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if result.Valid {
		t.Error("不存在的券码应校验失败")
	}
	if result.Message != "优惠券不存在" {
		t.Errorf("提示语错误: %q", result.Message)
	}
	if result.DiscountAmount != nil {
		t.Error("失败结果不应带折扣金额")
	}
}

func TestValidateCheckOrder(t *testing.T) {
	s := newVoucherService(t)

	// 同时违反启用状态、有效期、使用上限和最低消费，只报第一条
	mustCreate(t, s.DB, &models.Voucher{
		Code:       "DEAD10",
		Discount:   10,
		Type:       models.DiscountTypePercent,
		ExpiryDate: "2020-01-01",
		MaxUse:     intPtr(1),
		UsedCount:  1,
		MinOrder:   intPtr(1000),
		IsActive:   boolPtr(false),
	})

	result, err := s.Validate("DEAD10", 1)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if result.Message != "优惠券未启用" {
		t.Errorf("应先检查启用状态: %q", result.Message)
	}
}

func TestValidateExpired(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:       "OLD10",
		Discount:   10,
		Type:       models.DiscountTypePercent,
		ExpiryDate: "2020-01-01",
	})

	result, err := s.Validate("OLD10", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if result.Valid || result.Message != "优惠券已过期" {
		t.Errorf("过期券应校验失败: %+v", result)
	}
}

func TestValidateTodayNotExpired(t *testing.T) {
	s := newVoucherService(t)

	// 有效期当天仍然可用
	mustCreate(t, s.DB, &models.Voucher{
		Code:       "TODAY10",
		Discount:   10,
		Type:       models.DiscountTypePercent,
		ExpiryDate: time.Now().Format("2006-01-02"),
	})

	result, err := s.Validate("TODAY10", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if !result.Valid {
		t.Errorf("有效期当天应校验通过: %q", result.Message)
	}
}

func TestValidateUsageLimit(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:      "MAXED",
		Discount:  5,
		Type:      models.DiscountTypeFixed,
		MaxUse:    intPtr(2),
		UsedCount: 2,
	})

	result, err := s.Validate("MAXED", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if result.Valid || result.Message != "优惠券已达使用上限" {
		t.Errorf("用尽的券应校验失败: %+v", result)
	}
}

func TestValidateMinOrder(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:     "BIG20",
		Discount: 20,
		Type:     models.DiscountTypeFixed,
		MinOrder: intPtr(100),
	})

	result, err := s.Validate("BIG20", 99.99)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if result.Valid {
		t.Error("未满足最低消费应校验失败")
	}
	if !strings.Contains(result.Message, "100") {
		t.Errorf("提示语应包含最低消费金额: %q", result.Message)
	}

	// 恰好达到最低消费时通过
	result, err = s.Validate("BIG20", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if !result.Valid {
		t.Errorf("达到最低消费应校验通过: %q", result.Message)
	}
}

func TestValidatePercentDiscount(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:     "SAVE10",
		Discount: 10,
		Type:     models.DiscountTypePercent,
	})

	result, err := s.Validate("SAVE10", 200)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if !result.Valid {
		t.Fatalf("应校验通过: %q", result.Message)
	}
	if result.DiscountAmount == nil || *result.DiscountAmount != 20 {
		t.Errorf("10%%折扣在200元订单上应为20元: %v", result.DiscountAmount)
	}
	if result.DiscountType != models.DiscountTypePercent {
		t.Errorf("折扣类型错误: %q", result.DiscountType)
	}
	if result.DiscountValue == nil || *result.DiscountValue != 10 {
		t.Errorf("折扣值应原样返回: %v", result.DiscountValue)
	}
}

func TestValidateFixedDiscount(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:     "FLAT50",
		Discount: 50,
		Type:     models.DiscountTypeFixed,
	})

	// 固定面额原样返回，不与订单金额封顶
	result, err := s.Validate("FLAT50", 30)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if !result.Valid {
		t.Fatalf("应校验通过: %q", result.Message)
	}
	if result.DiscountAmount == nil || *result.DiscountAmount != 50 {
		t.Errorf("固定面额应原样返回: %v", result.DiscountAmount)
	}
}

func TestValidateCodeNormalization(t *testing.T) {
	s := newVoucherService(t)
	mustCreate(t, s.DB, &models.Voucher{
		Code:     "SAVE10",
		Discount: 10,
		Type:     models.DiscountTypePercent,
	})

	// 券码查询大小写不敏感且忽略首尾空格
	result, err := s.Validate("  save10  ", 100)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if !result.Valid {
		t.Errorf("小写带空格的券码应命中: %q", result.Message)
	}
}

func TestUseEnforcesLimit(t *testing.T) {
	s := newVoucherService(t)
	voucher := &models.Voucher{
		Code:     "ONCE",
		Discount: 5,
		Type:     models.DiscountTypeFixed,
		MaxUse:   intPtr(1),
	}
	mustCreate(t, s.DB, voucher)

	if err := s.Use(voucher.ID); err != nil {
		t.Fatalf("第一次使用失败: %v", err)
	}

	var stored models.Voucher
	s.DB.First(&stored, voucher.ID)
	if stored.UsedCount != 1 {
		t.Errorf("使用次数应为1: %d", stored.UsedCount)
	}

	if err := s.Use(voucher.ID); !errors.Is(err, ErrVoucherUsageLimit) {
		t.Errorf("超出上限应返回使用上限错误, got %v", err)
	}

	s.DB.First(&stored, voucher.ID)
	if stored.UsedCount != 1 {
		t.Errorf("超出上限后计数不应再增加: %d", stored.UsedCount)
	}
}

func TestUseWithoutLimit(t *testing.T) {
	s := newVoucherService(t)
	voucher := &models.Voucher{
		Code:     "FOREVER",
		Discount: 5,
		Type:     models.DiscountTypeFixed,
	}
	mustCreate(t, s.DB, voucher)

	// 未设置上限的券可无限次使用
	for i := 0; i < 3; i++ {
		if err := s.Use(voucher.ID); err != nil {
			t.Fatalf("第%d次使用失败: %v", i+1, err)
		}
	}

	var stored models.Voucher
	s.DB.First(&stored, voucher.ID)
	if stored.UsedCount != 3 {
		t.Errorf("使用次数应为3: %d", stored.UsedCount)
	}
}

func TestCreateVoucher(t *testing.T) {
	s := newVoucherService(t)

	voucher := &models.Voucher{Code: " save10 ", Discount: 10, Type: models.DiscountTypePercent}
	if err := s.CreateVoucher(voucher); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	var stored models.Voucher
	s.DB.First(&stored, voucher.ID)
	if stored.Code != "SAVE10" {
		t.Errorf("券码应标准化为大写: %q", stored.Code)
	}
	if !stored.Active() {
		t.Error("新建券默认启用")
	}

	// 重复券码(大小写不同)被拒绝
	err := s.CreateVoucher(&models.Voucher{Code: "Save10", Discount: 5, Type: models.DiscountTypeFixed})
	if !errors.Is(err, ErrVoucherCodeTaken) {
		t.Errorf("重复券码应返回已存在, got %v", err)
	}

	// 折扣类型只允许percent和fixed
	err = s.CreateVoucher(&models.Voucher{Code: "BADTYPE", Discount: 5, Type: "bogus"})
	if _, ok := AsValidationError(err); !ok {
		t.Errorf("非法折扣类型应返回校验错误, got %v", err)
	}
}

func TestToggleVoucher(t *testing.T) {
	s := newVoucherService(t)
	voucher := &models.Voucher{Code: "TOGGLE", Discount: 5, Type: models.DiscountTypeFixed}
	mustCreate(t, s.DB, voucher)

	toggled, err := s.ToggleVoucher(voucher.ID)
	if err != nil {
		t.Fatalf("切换失败: %v", err)
	}
	if toggled.Active() {
		t.Error("切换后应为停用")
	}

	toggled, err = s.ToggleVoucher(voucher.ID)
	if err != nil {
		t.Fatalf("切换失败: %v", err)
	}
	if !toggled.Active() {
		t.Error("再次切换后应为启用")
	}
}
