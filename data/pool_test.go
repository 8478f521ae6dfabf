package data

import (
	"context"
	"testing"
)

func TestNewPoolKeepsFailingAfterBadConn(t *testing.T) {
	t.Setenv("DB_CONN", "this is not a connection string")
	ctx := context.Background()

	pool, err := NewPool(ctx)
	if err == nil {
		t.Fatal("Expected an error from a bad connection string")
	}
	if pool != nil {
		t.Fatal("Expected no pool from a bad connection string")
	}

	// the sync.Once already ran so this call skips pool creation
	pool, err = NewPool(ctx)
	if err == nil {
		t.Fatal("Expected later calls to keep reporting the failure")
	}
	if pool != nil {
		t.Fatal("Expected later calls to keep returning a nil pool")
	}
}
