package services

import (
	"errors"
	"testing"
	"time"

	"candyshop-http-service/models"
)

func newPromotionService(t *testing.T) *PromotionService {
	t.Helper()
	// Redis为nil时直接回源数据库
	return NewPromotionService(newTestDB(t), newTestConfig(), nil)
}

func timePtr(tm time.Time) *time.Time { return &tm }

func TestGetActivePromotionsWindow(t *testing.T) {
	s := newPromotionService(t)
	now := time.Now()

	seed := []models.Promotion{
		// 无时间窗口，长期有效
		{Code: "ALWAYS", Name: "长期活动", PromotionType: models.PromotionTypeDiscount},
		// 在窗口内
		{Code: "NOW", Name: "进行中", PromotionType: models.PromotionTypeFlashSale,
			StartDate: timePtr(now.Add(-time.Hour)), EndDate: timePtr(now.Add(time.Hour))},
		// 已结束
		{Code: "ENDED", Name: "已结束", PromotionType: models.PromotionTypeSeasonal,
			StartDate: timePtr(now.Add(-48 * time.Hour)), EndDate: timePtr(now.Add(-24 * time.Hour))},
		// 未开始
		{Code: "FUTURE", Name: "未开始", PromotionType: models.PromotionTypeSeasonal,
			StartDate: timePtr(now.Add(24 * time.Hour))},
		// 停用
		{Code: "OFF", Name: "已停用", PromotionType: models.PromotionTypeDiscount, IsActive: boolPtr(false)},
	}
	for i := range seed {
		mustCreate(t, s.DB, &seed[i])
	}

	active, err := s.GetActivePromotions()
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	got := map[string]bool{}
	for _, p := range active {
		got[p.Code] = true
	}
	if len(active) != 2 || !got["ALWAYS"] || !got["NOW"] {
		t.Errorf("有效活动应为ALWAYS和NOW: %v", got)
	}
}

func TestGetPromotionsByType(t *testing.T) {
	s := newPromotionService(t)
	mustCreate(t, s.DB, &models.Promotion{Code: "FLASH1", Name: "秒杀", PromotionType: models.PromotionTypeFlashSale})
	mustCreate(t, s.DB, &models.Promotion{Code: "SEASON1", Name: "季节", PromotionType: models.PromotionTypeSeasonal})

	flash, err := s.GetPromotionsByType(models.PromotionTypeFlashSale)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(flash) != 1 || flash[0].Code != "FLASH1" {
		t.Errorf("按类型查询结果错误: %+v", flash)
	}
}

func TestUsePromotionEnforcesLimit(t *testing.T) {
	s := newPromotionService(t)
	promo := &models.Promotion{Code: "LIMIT2", Name: "限量", PromotionType: models.PromotionTypeDiscount, UsageLimit: intPtr(2)}
	mustCreate(t, s.DB, promo)

	for i := 0; i < 2; i++ {
		if err := s.UsePromotion(promo.ID); err != nil {
			t.Fatalf("第%d次使用失败: %v", i+1, err)
		}
	}

	if err := s.UsePromotion(promo.ID); !errors.Is(err, ErrPromotionUsageLimit) {
		t.Errorf("超出上限应返回使用上限错误, got %v", err)
	}

	var stored models.Promotion
	s.DB.First(&stored, promo.ID)
	if stored.UsageCount != 2 {
		t.Errorf("使用次数应停留在2: %d", stored.UsageCount)
	}
}

func TestCreatePromotionDuplicateCode(t *testing.T) {
	s := newPromotionService(t)
	if err := s.CreatePromotion(&models.Promotion{Code: "DUP", Name: "活动A", PromotionType: models.PromotionTypeDiscount}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	err := s.CreatePromotion(&models.Promotion{Code: "DUP", Name: "活动B", PromotionType: models.PromotionTypeDiscount})
	if err == nil {
		t.Error("重复活动码应被拒绝")
	}
}

func TestTogglePromotion(t *testing.T) {
	s := newPromotionService(t)
	promo := &models.Promotion{Code: "TOG", Name: "开关", PromotionType: models.PromotionTypeDiscount}
	mustCreate(t, s.DB, promo)

	toggled, err := s.TogglePromotion(promo.ID)
	if err != nil {
		t.Fatalf("切换失败: %v", err)
	}
	if toggled.Active() {
		t.Error("切换后应为停用")
	}

	active, err := s.GetActivePromotions()
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("停用活动不应出现在有效列表: %d", len(active))
	}
}
