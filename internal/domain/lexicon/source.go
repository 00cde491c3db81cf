package lexicon

import "sort"

// MapSource is an in-memory dictionary source.
type MapSource struct {
	Label      string
	Dictionary map[string][]string
}

var _ Source = MapSource{}

// Name returns the source label.
func (m MapSource) Name() string { return m.Label }

// Entries returns the dictionary sorted by phrase, so loads are reproducible.
func (m MapSource) Entries() ([]Entry, error) {
	keys := make([]string, 0, len(m.Dictionary))
	for k := range m.Dictionary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Phrase: k, Tags: m.Dictionary[k]}
	}
	return entries, nil
}
