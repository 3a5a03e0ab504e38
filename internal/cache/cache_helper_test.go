package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newTestCache(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "user:"), server
}

func TestCacheHelper_SetGetDelete(t *testing.T) {
	helper, server := newTestCache(t)
	ctx := context.Background()

	profile := cachedProfile{ID: "user-1", Email: "a@x.com"}
	if err := helper.Set(ctx, "id:user-1", profile, ProfileTTL); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	if !server.Exists("user:id:user-1") {
		t.Fatal("Expected prefixed key in redis")
	}

	var got cachedProfile
	if err := helper.Get(ctx, "id:user-1", &got); err != nil {
		t.Fatalf("Failed to get cache: %v", err)
	}
	if got != profile {
		t.Errorf("Expected %+v, got %+v", profile, got)
	}

	if err := helper.Delete(ctx, "id:user-1"); err != nil {
		t.Fatalf("Failed to delete cache: %v", err)
	}
	if err := helper.Get(ctx, "id:user-1", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after delete, got %v", err)
	}
}

func TestCacheHelper_MissAndExpiry(t *testing.T) {
	helper, server := newTestCache(t)
	ctx := context.Background()

	var got cachedProfile
	if err := helper.Get(ctx, "id:missing", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound on miss, got %v", err)
	}

	if err := helper.Set(ctx, "id:user-1", cachedProfile{ID: "user-1"}, time.Minute); err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	server.FastForward(2 * time.Minute)

	if err := helper.Get(ctx, "id:user-1", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after expiry, got %v", err)
	}
}

func TestCacheHelper_NilClient(t *testing.T) {
	helper := NewCacheHelper(nil, "user:")
	ctx := context.Background()

	if err := helper.Set(ctx, "id:user-1", cachedProfile{}, ProfileTTL); err != nil {
		t.Errorf("Expected Set to degrade gracefully, got %v", err)
	}
	if err := helper.Delete(ctx, "id:user-1"); err != nil {
		t.Errorf("Expected Delete to degrade gracefully, got %v", err)
	}

	var got cachedProfile
	if err := helper.Get(ctx, "id:user-1", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}
	if err := helper.HealthCheck(ctx); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}
}
