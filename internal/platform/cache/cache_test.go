package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/platform/cache"
)

func TestNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.Noop{}

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("c.Set() = %v, want: nil", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("c.Get() = %v, want: %v", err, cache.ErrMiss)
	}
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemoryCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("c.Get() = %q, %v, want: %q, nil", got, err, "v")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("c.Get(deleted) = %v, want: %v", err, cache.ErrMiss)
	}
}
