package resultlog

import (
	"context"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
)

// Discard drops every record.
type Discard struct{}

// Append does nothing.
func (Discard) Append(context.Context, *domanalysis.Result) error { return nil }

// Recent is not supported.
func (Discard) Recent(context.Context, int) ([]domanalysis.Record, error) { return nil, domain.ErrNotImplemented }

// Ping always succeeds.
func (Discard) Ping(context.Context) error { return nil }

// Close does nothing.
func (Discard) Close() error { return nil }
