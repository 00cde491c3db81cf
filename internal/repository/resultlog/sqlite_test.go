package resultlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T, path string) *SQLiteSink {
	t.Helper()
	s, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return s
}

func TestSQLiteSink_AppendAndRecent(t *testing.T) {
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "results.db"))
	defer s.Close()
	ctx := context.Background()

	inputs := []struct {
		id    string
		text  string
		score float64
		at    time.Time
	}{
		{"a", "good", 1, baseTime},
		{"b", "not good", -1, baseTime.Add(500 * time.Millisecond)},
		{"c", "very good", 2, baseTime.Add(time.Second)},
	}
	for _, in := range inputs {
		if err := s.Append(ctx, testResult(in.id, in.text, in.score, in.at)); err != nil {
			t.Fatalf("append %s: %v", in.id, err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("order = %s, %s; want c, b", got[0].ID, got[1].ID)
	}
	if got[1].Classification != "Negative" || got[1].Score != -1 || got[1].Text != "not good" {
		t.Errorf("unexpected record: %+v", got[1])
	}
	if !got[1].CreatedAt.Equal(inputs[1].at) {
		t.Errorf("created_at = %v, want %v", got[1].CreatedAt, inputs[1].at)
	}
	if got[0].Line != "Positive | Score: 2.0 | very good" {
		t.Errorf("line = %q", got[0].Line)
	}
}

func TestSQLiteSink_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.db")
	ctx := context.Background()

	s := openTestSQLite(t, path)
	if err := s.Append(ctx, testResult("a", "good", 1, baseTime)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s = openTestSQLite(t, path)
	defer s.Close()
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("got %+v", got)
	}
}

func TestSQLiteSink_DuplicateIDFails(t *testing.T) {
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "results.db"))
	defer s.Close()
	ctx := context.Background()

	if err := s.Append(ctx, testResult("a", "good", 1, baseTime)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, testResult("a", "good", 1, baseTime)); err == nil {
		t.Error("expected primary key violation")
	}
}

func TestSQLiteSink_PingAndEmptyRecent(t *testing.T) {
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "results.db"))
	defer s.Close()
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	got, err := s.Recent(ctx, 5)
	if err != nil || len(got) != 0 {
		t.Errorf("recent on empty db = %v, %v", got, err)
	}
	if got, _ := s.Recent(ctx, 0); got != nil {
		t.Errorf("Recent(0) = %v", got)
	}
}
