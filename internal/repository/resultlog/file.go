package resultlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

// FileSink appends one result line per analysis to a text file.
type FileSink struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenFile opens (or creates) the log file for appending. Missing parent
// directories are created.
func OpenFile(path string) (*FileSink, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create result log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open result log: %w", err)
	}
	return &FileSink{f: f, path: path}, nil
}

// Path returns the log file path.
func (s *FileSink) Path() string { return s.path }

// Append writes the result line followed by a newline.
func (s *FileSink) Append(_ context.Context, r *domanalysis.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return fmt.Errorf("%w: file sink closed", domain.ErrResultLogUnavailable)
	}
	if _, err := s.f.WriteString(r.Line() + "\n"); err != nil {
		metrics.ResultLogWritesTotal.WithLabelValues(string(DriverFile), "error").Inc()
		return fmt.Errorf("write result log: %w", err)
	}
	metrics.ResultLogWritesTotal.WithLabelValues(string(DriverFile), "ok").Inc()
	return nil
}

// Recent is not supported: the file holds rendered lines only.
func (s *FileSink) Recent(context.Context, int) ([]domanalysis.Record, error) {
	return nil, domain.ErrNotImplemented
}

// Ping reports whether the file is still open.
func (s *FileSink) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return fmt.Errorf("%w: file sink closed", domain.ErrResultLogUnavailable)
	}
	return nil
}

// Close closes the file. Further appends fail.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
