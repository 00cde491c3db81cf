package db

import (
	"context"
	"time"
)

// Store is the database facade used by the redis result log.
type Store interface {
	Pinger
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListStore provides append-only list operations.
type ListStore interface {
	// RPush appends values to the tail of the list and returns its new length.
	RPush(ctx context.Context, key string, values ...[]byte) (int64, error)
	// LRange returns elements start..stop inclusive; negative indexes count from the tail.
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	// LTrim keeps only elements start..stop inclusive.
	LTrim(ctx context.Context, key string, start, stop int64) error
}
