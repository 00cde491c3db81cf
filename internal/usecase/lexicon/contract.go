package lexicon

// Dictionary is the read side of the merged lexicon.
type Dictionary interface {
	Get(phrase string) ([]string, bool)
	MaxKeySize() int
	Len() int
	Sources() []string
}
