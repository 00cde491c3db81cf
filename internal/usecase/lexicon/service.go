package lexicon

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domlexicon "github.com/kailas-cloud/sentilex/internal/domain/lexicon"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

// Stats describes the loaded lexicon.
type Stats struct {
	Entries    int
	MaxKeySize int
	Sources    []string
}

// Entry is a lookup result.
type Entry struct {
	Phrase string
	Tags   []string
}

// Service exposes the lexicon for inspection.
type Service struct {
	dict Dictionary
}

// New creates a Service.
func New(dict Dictionary) *Service {
	return &Service{dict: dict}
}

// Stats returns the lexicon size and sources.
func (s *Service) Stats() Stats {
	return Stats{
		Entries:    s.dict.Len(),
		MaxKeySize: s.dict.MaxKeySize(),
		Sources:    s.dict.Sources(),
	}
}

// Lookup returns the merged tags of a phrase.
func (s *Service) Lookup(phrase string) (Entry, error) {
	if strings.TrimSpace(phrase) == "" {
		return Entry{}, domain.ErrEmptyInput
	}
	key := domlexicon.Normalize(phrase)
	tags, ok := s.dict.Get(key)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", domain.ErrPhraseNotFound, key)
	}
	return Entry{Phrase: key, Tags: append([]string(nil), tags...)}, nil
}

// PublishMetrics sets the lexicon gauges.
func (s *Service) PublishMetrics() {
	metrics.LexiconEntries.Set(float64(s.dict.Len()))
	metrics.LexiconMaxKeySize.Set(float64(s.dict.MaxKeySize()))
}
