package resultlog

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// createdAtLayout is fixed-width so created_at sorts as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteSink stores results in a sqlite table.
type SQLiteSink struct {
	pool *sqlitex.Pool
	path string
}

// OpenSQLite opens the database at path (WAL mode) and creates the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSink, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create result db dir: %w", err)
	}

	pool, err := sqlitex.NewPool("file:"+path, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite pool at %s: %w", path, err)
	}

	s := &SQLiteSink{pool: pool, path: path}
	if err := s.createSchema(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSink) createSchema(ctx context.Context) error {
	script, err := sqlFiles.ReadFile("sql/results.sql")
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("take conn: %w", err)
	}
	defer s.pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Append inserts one row per result.
func (s *SQLiteSink) Append(ctx context.Context, r *domanalysis.Result) error {
	rec := r.Record()

	conn, err := s.pool.Take(ctx)
	if err != nil {
		metrics.ResultLogWritesTotal.WithLabelValues(string(DriverSQLite), "error").Inc()
		return fmt.Errorf("take conn: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		"INSERT INTO results (id, classification, score, text, line, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []any{
				rec.ID, rec.Classification, rec.Score, rec.Text, rec.Line,
				rec.CreatedAt.Format(createdAtLayout),
			},
		})
	if err != nil {
		metrics.ResultLogWritesTotal.WithLabelValues(string(DriverSQLite), "error").Inc()
		return fmt.Errorf("insert result: %w", err)
	}
	metrics.ResultLogWritesTotal.WithLabelValues(string(DriverSQLite), "ok").Inc()
	return nil
}

// Recent returns up to n records, newest first.
func (s *SQLiteSink) Recent(ctx context.Context, n int) ([]domanalysis.Record, error) {
	if n <= 0 {
		return nil, nil
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("take conn: %w", err)
	}
	defer s.pool.Put(conn)

	var out []domanalysis.Record
	err = sqlitex.Execute(conn,
		"SELECT id, classification, score, text, line, created_at FROM results ORDER BY created_at DESC, rowid DESC LIMIT ?",
		&sqlitex.ExecOptions{
			Args: []any{n},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				createdAt, err := time.Parse(createdAtLayout, stmt.ColumnText(5))
				if err != nil {
					return fmt.Errorf("parse created_at: %w", err)
				}
				out = append(out, domanalysis.Record{
					ID:             stmt.ColumnText(0),
					Classification: stmt.ColumnText(1),
					Score:          stmt.ColumnFloat(2),
					Text:           stmt.ColumnText(3),
					Line:           stmt.ColumnText(4),
					CreatedAt:      createdAt,
				})
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	return out, nil
}

// Ping checks that a connection can be taken and queried.
func (s *SQLiteSink) Ping(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("take conn: %w", err)
	}
	defer s.pool.Put(conn)
	return sqlitex.Execute(conn, "SELECT 1", nil)
}

// Close closes the pool.
func (s *SQLiteSink) Close() error {
	return s.pool.Close()
}
