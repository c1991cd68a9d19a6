package services

import (
	"errors"
	"testing"

	"candyshop-http-service/models"
)

func uintPtr(n uint) *uint { return &n }

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	s := NewProductService(db, newTestConfig())
	mustCreate(t, db, &models.Category{Name: "硬糖"})

	// 挂到存在的分类下
	product := &models.Product{Name: "水果硬糖", Price: 9.9, CategoryID: uintPtr(1)}
	if err := s.CreateProduct(product); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	// 不存在的分类被拒绝
	err := s.CreateProduct(&models.Product{Name: "软糖", Price: 5, CategoryID: uintPtr(999)})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("不存在的分类应返回ErrCategoryNotFound, got %v", err)
	}

	// 无分类的商品允许创建
	if err := s.CreateProduct(&models.Product{Name: "散装糖", Price: 1}); err != nil {
		t.Errorf("无分类商品应允许创建: %v", err)
	}

	// 名称和价格校验
	if err := s.CreateProduct(&models.Product{Price: 1}); err == nil {
		t.Error("空名称应被拒绝")
	}
	if err := s.CreateProduct(&models.Product{Name: "负价", Price: -1}); err == nil {
		t.Error("负价格应被拒绝")
	}
}

func TestGetProductsByCategory(t *testing.T) {
	db := newTestDB(t)
	s := NewProductService(db, newTestConfig())
	mustCreate(t, db, &models.Category{Name: "硬糖"})
	mustCreate(t, db, &models.Category{Name: "软糖"})
	mustCreate(t, db, &models.Product{Name: "水果硬糖", Price: 9.9, CategoryID: uintPtr(1)})
	mustCreate(t, db, &models.Product{Name: "薄荷硬糖", Price: 8.8, CategoryID: uintPtr(1)})
	mustCreate(t, db, &models.Product{Name: "橡皮糖", Price: 12, CategoryID: uintPtr(2)})

	products, err := s.GetProductsByCategory(1)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("分类1下应有2件商品: %d", len(products))
	}
}

func TestDeleteCategoryWithProducts(t *testing.T) {
	db := newTestDB(t)
	s := NewCategoryService(db, newTestConfig())
	mustCreate(t, db, &models.Category{Name: "硬糖"})
	mustCreate(t, db, &models.Product{Name: "水果硬糖", Price: 9.9, CategoryID: uintPtr(1)})

	// 分类下仍有商品时拒绝删除
	err := s.DeleteCategory(1)
	if _, ok := AsValidationError(err); !ok {
		t.Errorf("有商品的分类应拒绝删除, got %v", err)
	}

	// 清空商品后可以删除
	db.Delete(&models.Product{}, 1)
	if err := s.DeleteCategory(1); err != nil {
		t.Errorf("空分类应允许删除: %v", err)
	}

	if err := s.DeleteCategory(999); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("不存在的分类应返回ErrCategoryNotFound, got %v", err)
	}
}
