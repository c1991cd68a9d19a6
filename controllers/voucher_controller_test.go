package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
	"candyshop-http-service/services/container"
)

// TestMain 初始化日志配置后运行测试
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
	}
	os.Exit(m.Run())
}

func newTestContainer(t *testing.T) *container.ServiceContainer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&models.Voucher{}); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return container.NewServiceContainer(db, &config.Config{JWTSecretKey: "test-secret-key"}, nil)
}

func TestValidateVoucherZeroOrderTotal(t *testing.T) {
	c := newTestContainer(t)
	if err := c.GetDB().Create(&models.Voucher{
		Code:     "FLAT5",
		Discount: 5,
		Type:     models.DiscountTypeFixed,
	}).Error; err != nil {
		t.Fatalf("创建测试数据失败: %v", err)
	}

	router := gin.New()
	router.POST("/api/vouchers/validate", HandleVoucherFunc(c, "validateVoucher"))

	// 零元订单的校验请求必须到达校验逻辑，不能在参数绑定层被拒绝
	body := `{"code": "FLAT5", "order_total": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/vouchers/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var envelope struct {
		Code int `json:"code"`
		Data struct {
			Valid          bool     `json:"valid"`
			DiscountAmount *float64 `json:"discount_amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !envelope.Data.Valid {
		t.Errorf("零元订单应校验通过: %s", w.Body.String())
	}
	if envelope.Data.DiscountAmount == nil || *envelope.Data.DiscountAmount != 5 {
		t.Errorf("固定面额应原样返回: %v", envelope.Data.DiscountAmount)
	}
}

func TestValidateVoucherMissingCode(t *testing.T) {
	c := newTestContainer(t)

	router := gin.New()
	router.POST("/api/vouchers/validate", HandleVoucherFunc(c, "validateVoucher"))

	req := httptest.NewRequest(http.MethodPost, "/api/vouchers/validate", strings.NewReader(`{"order_total": 100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少券码应返回400: %d", w.Code)
	}
}
