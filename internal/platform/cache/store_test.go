package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	s.Set(ctx, "k", 42)
	v, ok := s.Get(ctx, "k")
	if !ok || v != 42 {
		t.Fatalf("unexpected value: got=%v ok=%v", v, ok)
	}

	s.Delete(ctx, "k")
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10 * time.Millisecond)

	s.Set(ctx, "k", "v")
	time.Sleep(25 * time.Millisecond)

	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "loaded" {
			t.Fatalf("unexpected value: %v", v)
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
}

func TestGetOrLoadError(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	_, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, fmt.Errorf("boom")
	})
	if err == nil {
		t.Fatal("expected loader error to propagate")
	}

	// Errors are not cached.
	v, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("unexpected result after failed load: v=%v err=%v", v, err)
	}
}
