package models

import "testing"

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		quantity int
		reorder  int
		want     string
	}{
		{-5, 10, StockStatusOut},
		{0, 10, StockStatusOut},
		{1, 10, StockStatusLow},
		{9, 10, StockStatusLow},
		{10, 10, StockStatusIn}, // 等于阈值视为正常
		{11, 10, StockStatusIn},
		{100, 10, StockStatusIn},

		// 阈值为0时永远不会出现低库存
		{0, 0, StockStatusOut},
		{1, 0, StockStatusIn},
	}

	for _, tc := range cases {
		if got := DeriveStockStatus(tc.quantity, tc.reorder); got != tc.want {
			t.Errorf("DeriveStockStatus(%d, %d) = %q, want %q", tc.quantity, tc.reorder, got, tc.want)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	inv := Inventory{QuantityInStock: 5, ReorderLevel: 10, Status: StockStatusIn}
	inv.UpdateStatus()
	if inv.Status != StockStatusLow {
		t.Errorf("status=%q, want %q", inv.Status, StockStatusLow)
	}
}
