package resultlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sony/gobreaker"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
)

// mockListStore is an in-memory list store.
type mockListStore struct {
	lists   map[string][][]byte
	pushErr error
	trimErr error
	pushes  int
	trims   int
	pingErr error
	closed  bool
}

func newMockListStore() *mockListStore {
	return &mockListStore{lists: make(map[string][][]byte)}
}

func (m *mockListStore) Ping(context.Context) error { return m.pingErr }

func (m *mockListStore) RPush(_ context.Context, key string, values ...[]byte) (int64, error) {
	m.pushes++
	if m.pushErr != nil {
		return 0, m.pushErr
	}
	m.lists[key] = append(m.lists[key], values...)
	return int64(len(m.lists[key])), nil
}

func (m *mockListStore) LRange(_ context.Context, key string, start, stop int64) ([][]byte, error) {
	l := m.lists[key]
	n := int64(len(l))
	if start < 0 {
		start = max(n+start, 0)
	}
	if stop < 0 {
		stop = n + stop
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop {
		return nil, nil
	}
	return l[start : stop+1], nil
}

func (m *mockListStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	m.trims++
	if m.trimErr != nil {
		return m.trimErr
	}
	kept, _ := m.LRange(ctx, key, start, stop)
	m.lists[key] = append([][]byte(nil), kept...)
	return nil
}

func (m *mockListStore) Close() { m.closed = true }

func TestRedisSink_AppendsJSONRecord(t *testing.T) {
	store := newMockListStore()
	s := NewRedisSink(store, "", 0, nil)

	if err := s.Append(context.Background(), testResult("r1", "good", 1, baseTime)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if s.Key() != "sentilex:results" {
		t.Errorf("key = %q", s.Key())
	}

	items := store.lists["sentilex:results"]
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	var rec domanalysis.Record
	if err := json.Unmarshal(items[0], &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.ID != "r1" || rec.Line != "Positive | Score: 1.0 | good" || !rec.CreatedAt.Equal(baseTime) {
		t.Errorf("unexpected record: %+v", rec)
	}
	if store.trims != 0 {
		t.Error("unbounded sink must not trim")
	}
}

func TestRedisSink_TrimsToMaxEntries(t *testing.T) {
	store := newMockListStore()
	s := NewRedisSink(store, "results", 2, nil)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Append(context.Background(), testResult(id, "x", 0, baseTime)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if len(store.lists["results"]) != 2 {
		t.Fatalf("list length = %d, want 2", len(store.lists["results"]))
	}

	recent, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("recent = %+v", recent)
	}
}

func TestRedisSink_TrimFailureKeepsAppend(t *testing.T) {
	store := newMockListStore()
	store.trimErr = errors.New("timeout")
	s := NewRedisSink(store, "results", 1, nil)
	ctx := context.Background()

	for i := range 6 {
		if err := s.Append(ctx, testResult("a", "x", 0, baseTime)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if store.trims != 5 {
		t.Errorf("trims = %d, want 5", store.trims)
	}
	if len(store.lists["results"]) != 6 {
		t.Errorf("list length = %d, want 6", len(store.lists["results"]))
	}
	if s.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, trim failures must not trip the breaker", s.State())
	}
}

func TestRedisSink_RecentNewestFirstSkipsGarbage(t *testing.T) {
	store := newMockListStore()
	s := NewRedisSink(store, "results", 0, nil)
	ctx := context.Background()

	_ = s.Append(ctx, testResult("a", "x", 0, baseTime))
	store.lists["results"] = append(store.lists["results"], []byte("not json"))
	_ = s.Append(ctx, testResult("b", "x", 0, baseTime))

	recent, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "b" || recent[1].ID != "a" {
		t.Errorf("recent = %+v", recent)
	}

	if none, _ := s.Recent(ctx, 0); none != nil {
		t.Errorf("Recent(0) = %v", none)
	}
}

func TestRedisSink_BreakerOpensAfterFailures(t *testing.T) {
	store := newMockListStore()
	store.pushErr = errors.New("connection refused")
	s := NewRedisSink(store, "results", 0, nil)
	ctx := context.Background()

	for range 5 {
		err := s.Append(ctx, testResult("a", "x", 0, baseTime))
		if err == nil || errors.Is(err, domain.ErrResultLogUnavailable) {
			t.Fatalf("expected store error while closed, got %v", err)
		}
	}
	if s.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", s.State())
	}

	err := s.Append(ctx, testResult("a", "x", 0, baseTime))
	if !errors.Is(err, domain.ErrResultLogUnavailable) {
		t.Errorf("error = %v, want ErrResultLogUnavailable", err)
	}
	if store.pushes != 5 {
		t.Errorf("open breaker must not reach the store, pushes = %d", store.pushes)
	}
}

func TestRedisSink_PingAndClose(t *testing.T) {
	store := newMockListStore()
	store.pingErr = errors.New("down")
	s := NewRedisSink(store, "results", 0, nil)

	if err := s.Ping(context.Background()); err == nil {
		t.Error("expected ping error")
	}
	if err := s.Close(); err != nil || !store.closed {
		t.Errorf("close: err=%v closed=%v", err, store.closed)
	}
}
