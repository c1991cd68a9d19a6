package services

import (
	"testing"

	"candyshop-http-service/models"
)

func TestGetAdminStats(t *testing.T) {
	db := newTestDB(t)
	s := NewStatsService(db, newTestConfig(), nil)

	mustCreate(t, db, &models.Product{Name: "水果硬糖", Price: 9.9})
	mustCreate(t, db, &models.Product{Name: "棉花糖", Price: 12.5})

	mustCreate(t, db, &models.User{Username: "alice", Password: "x", Email: "a@example.com", Role: models.RoleCustomer})
	mustCreate(t, db, &models.User{Username: "boss", Password: "x", Email: "b@example.com", Role: models.RoleAdmin})

	mustCreate(t, db, &models.Order{CustomerName: "张三", Phone: "1", TotalAmount: 100, Status: models.OrderStatusPending})
	mustCreate(t, db, &models.Order{CustomerName: "李四", Phone: "2", TotalAmount: 50.5, Status: models.OrderStatusConfirmed})

	mustCreate(t, db, &models.Inventory{ProductID: 1, QuantityInStock: 3, ReorderLevel: 10})
	mustCreate(t, db, &models.Inventory{ProductID: 2, QuantityInStock: 0, ReorderLevel: 10})

	mustCreate(t, db, &models.Review{ProductID: 1, CustomerID: 1, Content: "好吃", Rating: 5, Status: models.ReviewStatusPending})

	stats, err := s.GetAdminStats()
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}

	if stats.TotalProducts != 2 {
		t.Errorf("商品总数错误: %d", stats.TotalProducts)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("订单总数错误: %d", stats.TotalOrders)
	}
	// 只统计customer角色，管理员不计入
	if stats.TotalCustomers != 1 {
		t.Errorf("客户总数错误: %d", stats.TotalCustomers)
	}
	if stats.TotalRevenue != 150.5 {
		t.Errorf("营收总额错误: %v", stats.TotalRevenue)
	}
	if stats.PendingOrders != 1 {
		t.Errorf("待处理订单数错误: %d", stats.PendingOrders)
	}
	// 缺货记录不计入低库存
	if stats.LowStockItems != 1 {
		t.Errorf("低库存数错误: %d", stats.LowStockItems)
	}
	if stats.PendingReviews != 1 {
		t.Errorf("待审核评价数错误: %d", stats.PendingReviews)
	}
}

func TestGetAdminStatsEmptyDatabase(t *testing.T) {
	s := NewStatsService(newTestDB(t), newTestConfig(), nil)

	stats, err := s.GetAdminStats()
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}

	// 空表上SUM返回NULL，营收必须兜底为0
	if stats.TotalRevenue != 0 {
		t.Errorf("空库营收应为0: %v", stats.TotalRevenue)
	}
	if stats.TotalProducts != 0 || stats.TotalOrders != 0 {
		t.Errorf("空库计数应为0: %+v", stats)
	}
}
