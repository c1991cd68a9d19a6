package services

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"candyshop-http-service/config"
	"candyshop-http-service/models"
)

// TestMain 初始化日志配置后运行测试
func TestMain(m *testing.M) {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
	}
	os.Exit(m.Run())
}

// newTestDB 为每个测试创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Inventory{},
		&models.Order{},
		&models.Voucher{},
		&models.Promotion{},
		&models.Review{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret-key",
	}
}

// mustCreate 直接落库一条测试数据
func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("创建测试数据失败: %v", err)
	}
}
