package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(1, 3)

	// 初始容量允许突发3次
	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("第%d次请求应放行", i+1)
		}
	}

	if tb.Allow() {
		t.Error("令牌耗尽后应拒绝")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(10, 1)

	if !tb.Allow() {
		t.Fatal("第一次请求应放行")
	}
	if tb.Allow() {
		t.Fatal("令牌耗尽后应拒绝")
	}

	// 10个/秒的速率，150ms后至少补充了1个令牌
	time.Sleep(150 * time.Millisecond)
	if !tb.Allow() {
		t.Error("等待填充后应放行")
	}
}

func TestTokenBucketCapacityCap(t *testing.T) {
	tb := NewTokenBucket(100, 2)

	// 长时间空闲后令牌数不超过桶容量
	tb.lastRefill = time.Now().Add(-time.Minute)

	allowed := 0
	for i := 0; i < 10; i++ {
		if tb.Allow() {
			allowed++
		}
	}
	if allowed != 2 {
		t.Errorf("空闲后的突发不应超过容量: allowed=%d", allowed)
	}
}
