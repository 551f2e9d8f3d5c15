package redis_test

import (
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/redis/redistest"
	"context"
	"fmt"
	"testing"
	"time"
)

func TestGetValueWithExpiration(t *testing.T) {
	mr := redistest.Start(t)
	ctx := context.Background()

	v, err := redis.GetValue(ctx, "k")
	if err != nil || v != "" {
		t.Fatalf("GetValue() on missing key = %q, %v", v, err)
	}

	if err = redis.SetWithExpiration(ctx, "k", "payload", time.Minute); err != nil {
		t.Fatal(err)
	}
	v, err = redis.GetValue(ctx, "k")
	if err != nil || v != "payload" {
		t.Fatalf("GetValue() = %q, %v", v, err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(time.Minute)
	if v, _ = redis.GetValue(ctx, "k"); v != "" {
		t.Errorf("GetValue() after expiry = %q", v)
	}
}

func TestDeleteByPattern(t *testing.T) {
	mr := redistest.Start(t)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		_ = mr.Set(fmt.Sprintf("dashboard:user:1:%d", i), "x")
	}
	_ = mr.Set("dashboard:user:2:6", "x")
	_ = mr.Set("other", "x")

	n, err := redis.DeleteByPattern(ctx, "dashboard:user:1:*")
	if err != nil || n != 150 {
		t.Fatalf("DeleteByPattern() = %d, %v", n, err)
	}
	if !mr.Exists("dashboard:user:2:6") || !mr.Exists("other") {
		t.Error("unrelated keys deleted")
	}

	if n, err = redis.DeleteByPattern(ctx, "nothing:*"); err != nil || n != 0 {
		t.Errorf("DeleteByPattern() on no match = %d, %v", n, err)
	}
}

func TestGetDelConsumesKey(t *testing.T) {
	mr := redistest.Start(t)
	ctx := context.Background()

	if err := redis.SetWithExpiration(ctx, "k", "v", time.Minute); err != nil {
		t.Fatal(err)
	}
	v, err := redis.GetDel(ctx, "k")
	if err != nil || v != "v" {
		t.Fatalf("GetDel() = %q, %v", v, err)
	}
	if mr.Exists("k") {
		t.Error("key still present after GetDel")
	}
}

func TestTryLockIsExclusive(t *testing.T) {
	redistest.Start(t)
	ctx := context.Background()

	ok, err := redis.TryLock(ctx, "lock", "a", time.Minute, 1)
	if err != nil || !ok {
		t.Fatalf("first lock = %v, %v", ok, err)
	}
	ok, err = redis.TryLock(ctx, "lock", "b", time.Minute, 1)
	if err != nil || ok {
		t.Fatalf("second lock = %v, %v", ok, err)
	}

	// 只有持有者可以释放
	redis.UnLock(ctx, "lock", "b")
	if exists, _ := redis.Exists(ctx, "lock"); !exists {
		t.Fatal("lock released by non-owner")
	}
	redis.UnLock(ctx, "lock", "a")
	if exists, _ := redis.Exists(ctx, "lock"); exists {
		t.Fatal("lock not released by owner")
	}
}
