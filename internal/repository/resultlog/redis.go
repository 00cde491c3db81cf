package resultlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

// DefaultRedisKey is the list the redis sink appends to.
const DefaultRedisKey = domain.KeyPrefix + "results"

// listStore is the consumer interface for the redis sink (ISP).
type listStore interface {
	Ping(ctx context.Context) error
	RPush(ctx context.Context, key string, values ...[]byte) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
	Close()
}

// RedisSink appends JSON records to a redis list behind a circuit breaker.
type RedisSink struct {
	store      listStore
	key        string
	maxEntries int64
	cb         *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewRedisSink creates a sink writing to key. maxEntries > 0 caps the list
// length, dropping the oldest records.
func NewRedisSink(store listStore, key string, maxEntries int64, logger *zap.Logger) *RedisSink {
	if key == "" {
		key = DefaultRedisKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &RedisSink{
		store:      store,
		key:        key,
		maxEntries: maxEntries,
		logger:     logger,
	}
	s.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "resultlog-redis",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return s
}

// Key returns the redis list key.
func (s *RedisSink) Key() string { return s.key }

// State returns the circuit breaker state.
func (s *RedisSink) State() gobreaker.State { return s.cb.State() }

// Append pushes the record. While the breaker is open, appends fail fast
// with domain.ErrResultLogUnavailable.
func (s *RedisSink) Append(ctx context.Context, r *domanalysis.Result) error {
	data, err := json.Marshal(r.Record())
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	length, err := s.cb.Execute(func() (any, error) {
		n, err := s.store.RPush(ctx, s.key, data)
		if err != nil {
			return nil, err
		}
		return n, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.ResultLogWritesTotal.WithLabelValues(string(DriverRedis), "rejected").Inc()
			return fmt.Errorf("%w: %w", domain.ErrResultLogUnavailable, err)
		}
		metrics.ResultLogWritesTotal.WithLabelValues(string(DriverRedis), "error").Inc()
		return fmt.Errorf("append result: %w", err)
	}
	metrics.ResultLogWritesTotal.WithLabelValues(string(DriverRedis), "ok").Inc()

	// The record is stored; a failed trim only delays capping the list.
	if n, _ := length.(int64); s.maxEntries > 0 && n > s.maxEntries {
		if err := s.store.LTrim(ctx, s.key, -s.maxEntries, -1); err != nil {
			s.logger.Warn("Failed to trim result log", zap.String("key", s.key), zap.Error(err))
		}
	}
	return nil
}

// Recent returns up to n records, newest first.
func (s *RedisSink) Recent(ctx context.Context, n int) ([]domanalysis.Record, error) {
	if n <= 0 {
		return nil, nil
	}
	items, err := s.store.LRange(ctx, s.key, -int64(n), -1)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	out := make([]domanalysis.Record, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var rec domanalysis.Record
		if err := json.Unmarshal(items[i], &rec); err != nil {
			s.logger.Warn("Skipping unreadable result record", zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Ping checks redis connectivity.
func (s *RedisSink) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Close closes the underlying client.
func (s *RedisSink) Close() error {
	s.store.Close()
	return nil
}
