package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T, prefix string) *CacheHelper {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, prefix)
}

func TestCacheHelperSetGet(t *testing.T) {
	helper := newTestHelper(t, "user:")
	ctx := context.Background()

	type row struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	if err := helper.Set(ctx, "id:1", row{ID: 1, Name: "Ani"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got row
	if err := helper.Get(ctx, "id:1", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != 1 || got.Name != "Ani" {
		t.Fatalf("unexpected cached value: %+v", got)
	}
}

func TestCacheHelperGetMiss(t *testing.T) {
	helper := newTestHelper(t, "user:")

	var got map[string]interface{}
	err := helper.Get(context.Background(), "id:404", &got)
	if err != ErrCacheNotFound {
		t.Fatalf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestCacheHelperNilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "user:")
	ctx := context.Background()

	if err := helper.Set(ctx, "id:1", "value", time.Minute); err != nil {
		t.Fatalf("set with nil client should be a no-op, got %v", err)
	}
	if err := helper.Delete(ctx, "id:1"); err != nil {
		t.Fatalf("delete with nil client should be a no-op, got %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "id:1", &dest); err != ErrCacheNotAvailable {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}
}

func TestCacheHelperInvalidatePattern(t *testing.T) {
	helper := newTestHelper(t, "session:")
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := helper.Set(ctx, fmt.Sprintf("user:%d", i), i, time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	if err := helper.Set(ctx, "id:9", 9, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := helper.InvalidatePattern(ctx, "user:*"); err != nil {
		t.Fatalf("invalidate pattern: %v", err)
	}

	for i := 1; i <= 5; i++ {
		var dest int
		if err := helper.Get(ctx, fmt.Sprintf("user:%d", i), &dest); err != ErrCacheNotFound {
			t.Fatalf("expected key user:%d gone, got %v", i, err)
		}
	}

	var kept int
	if err := helper.Get(ctx, "id:9", &kept); err != nil {
		t.Fatalf("unrelated key should survive: %v", err)
	}
}

func TestCacheOrExecuteFetchesOnMiss(t *testing.T) {
	helper := newTestHelper(t, "resume:")
	ctx := context.Background()

	calls := 0
	var got string
	err := helper.CacheOrExecute(ctx, "id:7", &got, time.Minute, func() (interface{}, error) {
		calls++
		return "fetched", nil
	})
	if err != nil {
		t.Fatalf("cache or execute: %v", err)
	}
	if got != "fetched" || calls != 1 {
		t.Fatalf("expected one fetch producing %q, got %q after %d calls", "fetched", got, calls)
	}
}

func TestCacheManagerNilClient(t *testing.T) {
	cm := NewCacheManager(nil)

	if err := cm.HealthCheck(context.Background()); err != ErrCacheNotAvailable {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}
	if err := cm.ClearAll(context.Background()); err != nil {
		t.Fatalf("clear all with nil client should be a no-op, got %v", err)
	}
}
