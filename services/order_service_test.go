package services

import (
	"errors"
	"testing"

	"candyshop-http-service/models"
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	return NewOrderService(newTestDB(t), newTestConfig())
}

func TestCreateOrderDefaults(t *testing.T) {
	s := newOrderService(t)

	order := &models.Order{
		ID:           77, // 客户端传入的ID必须被忽略
		CustomerName: "张三",
		Phone:        "13800138000",
		TotalAmount:  58.5,
	}
	if err := s.CreateOrder(order); err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	if order.OrderChannel != "mobile" {
		t.Errorf("下单渠道默认为mobile: %q", order.OrderChannel)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("订单状态默认为pending: %q", order.Status)
	}
	if order.ID == 77 {
		t.Error("ID应由数据库分配")
	}
	if order.CreatedAt.IsZero() {
		t.Error("创建时间未设置")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := newOrderService(t)

	cases := []struct {
		name  string
		order models.Order
	}{
		{"缺少姓名", models.Order{Phone: "13800138000", TotalAmount: 10}},
		{"缺少电话", models.Order{CustomerName: "张三", TotalAmount: 10}},
		{"负数金额", models.Order{CustomerName: "张三", Phone: "13800138000", TotalAmount: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.CreateOrder(&tc.order)
			if _, ok := AsValidationError(err); !ok {
				t.Errorf("应返回校验错误, got %v", err)
			}
		})
	}

	// 零元订单(全额抵扣)允许创建
	free := models.Order{CustomerName: "张三", Phone: "13800138000", TotalAmount: 0}
	if err := s.CreateOrder(&free); err != nil {
		t.Errorf("零元订单应允许创建: %v", err)
	}
}

func TestGetOrdersByPhone(t *testing.T) {
	s := newOrderService(t)

	for _, phone := range []string{"13800138000", "13800138000", "13900000000"} {
		order := models.Order{CustomerName: "张三", Phone: phone, TotalAmount: 10}
		if err := s.CreateOrder(&order); err != nil {
			t.Fatalf("创建订单失败: %v", err)
		}
	}

	orders, err := s.GetOrdersByPhone("13800138000")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("按手机号查询结果错误: %d", len(orders))
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newOrderService(t)
	order := models.Order{CustomerName: "张三", Phone: "13800138000", TotalAmount: 10}
	if err := s.CreateOrder(&order); err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	updated, err := s.UpdateOrderStatus(order.ID, models.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("更新状态失败: %v", err)
	}
	if updated.Status != models.OrderStatusConfirmed {
		t.Errorf("status=%q", updated.Status)
	}

	if _, err := s.UpdateOrderStatus(999, models.OrderStatusConfirmed); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("不存在的订单应返回ErrOrderNotFound, got %v", err)
	}
}

func TestGetOrdersByStatus(t *testing.T) {
	s := newOrderService(t)

	pending := models.Order{CustomerName: "张三", Phone: "13800138000", TotalAmount: 10}
	if err := s.CreateOrder(&pending); err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}
	confirmed := models.Order{CustomerName: "李四", Phone: "13900000000", TotalAmount: 20, Status: models.OrderStatusConfirmed}
	if err := s.CreateOrder(&confirmed); err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	orders, err := s.GetOrdersByStatus(models.OrderStatusPending)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(orders) != 1 || orders[0].CustomerName != "张三" {
		t.Errorf("按状态查询结果错误: %+v", orders)
	}
}
