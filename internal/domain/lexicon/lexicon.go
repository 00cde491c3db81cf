// Package lexicon holds the merged phrase -> tags dictionary used by the
// phrase tagger. A Lexicon is built once from an ordered list of sources and
// is read-only afterwards, so it can be shared between goroutines freely.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/sentilex/internal/domain"
)

// Entry is one phrase of a dictionary source with its tags, in source order.
type Entry struct {
	Phrase string
	Tags   []string
}

// Source yields the entries of one dictionary.
type Source interface {
	Name() string
	Entries() ([]Entry, error)
}

// Lexicon maps normalized phrases to their merged tag sequences.
type Lexicon struct {
	entries    map[string][]string
	maxKeySize int
	sources    []string
}

// Load merges sources in order. Tags of a phrase present in several sources
// are concatenated (first source first) and never deduplicated.
// Any failing source fails the whole load.
func Load(sources ...Source) (*Lexicon, error) {
	lex := &Lexicon{entries: make(map[string][]string)}
	for _, src := range sources {
		entries, err := src.Entries()
		if err != nil {
			return nil, fmt.Errorf("%w: source %q: %w", domain.ErrLexiconLoad, src.Name(), err)
		}
		for _, e := range entries {
			if err := lex.add(e); err != nil {
				return nil, fmt.Errorf("%w: source %q: %w", domain.ErrLexiconLoad, src.Name(), err)
			}
		}
		lex.sources = append(lex.sources, src.Name())
	}
	return lex, nil
}

func (l *Lexicon) add(e Entry) error {
	key := Normalize(e.Phrase)
	if key == "" {
		return fmt.Errorf("%w: empty phrase", domain.ErrMalformedDictionary)
	}
	existing := l.entries[key]
	merged := make([]string, 0, len(existing)+len(e.Tags))
	merged = append(merged, existing...)
	l.entries[key] = append(merged, e.Tags...)
	if n := KeySize(key); n > l.maxKeySize {
		l.maxKeySize = n
	}
	return nil
}

// Get returns the tags of a phrase. Lookup is case-insensitive and ignores
// runs of whitespace. The returned slice must not be modified.
func (l *Lexicon) Get(phrase string) ([]string, bool) {
	tags, ok := l.entries[Normalize(phrase)]
	return tags, ok
}

// MaxKeySize returns the length in tokens of the longest phrase, or 0 for an
// empty lexicon.
func (l *Lexicon) MaxKeySize() int { return l.maxKeySize }

// Len returns the number of distinct phrases.
func (l *Lexicon) Len() int { return len(l.entries) }

// Sources returns the names of the merged sources, in merge order.
func (l *Lexicon) Sources() []string {
	return append([]string(nil), l.sources...)
}

// Normalize lower-cases a phrase and joins its words with single spaces.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// KeySize returns the number of space-separated words in a phrase.
func KeySize(phrase string) int {
	return len(strings.Fields(phrase))
}
