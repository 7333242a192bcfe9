package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"catalog-api/pkg/storage"
)

func TestDisabledStorage(t *testing.T) {
	s, err := storage.New(storage.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Enabled() {
		t.Fatalf("storage without endpoint should be disabled")
	}

	ctx := context.Background()
	if err := s.Put(ctx, "k", strings.NewReader("x"), 1, "text/plain"); !errors.Is(err, storage.ErrDisabled) {
		t.Errorf("Put: expected ErrDisabled, got %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrDisabled) {
		t.Errorf("Get: expected ErrDisabled, got %v", err)
	}
	if err := s.Remove(ctx, "k"); !errors.Is(err, storage.ErrDisabled) {
		t.Errorf("Remove: expected ErrDisabled, got %v", err)
	}
	if err := storage.EnsureBucket(ctx, s); !errors.Is(err, storage.ErrDisabled) {
		t.Errorf("EnsureBucket: expected ErrDisabled, got %v", err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := storage.New(storage.Config{Endpoint: "localhost:9000"}); err == nil {
		t.Errorf("expected error for missing bucket")
	}
}

func TestNewEnabled(t *testing.T) {
	s, err := storage.New(storage.Config{Endpoint: "localhost:9000", Bucket: "files", AccessKey: "a", SecretKey: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Enabled() {
		t.Errorf("storage with endpoint should be enabled")
	}
}
