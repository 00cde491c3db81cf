package analysis

import (
	"context"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// Dictionary is the read side of the lexicon used by the phrase tagger.
type Dictionary interface {
	Get(phrase string) ([]string, bool)
	MaxKeySize() int
}

// Splitter splits raw text into sentences of words.
type Splitter interface {
	Split(ctx context.Context, text string) ([][]string, error)
}

// POSTagger attaches a lemma and a POS tag to every word.
type POSTagger interface {
	Tag(ctx context.Context, sentences [][]string) ([]token.Sentence, error)
}

// ResultLog records finished analyses.
type ResultLog interface {
	Append(ctx context.Context, r *domanalysis.Result) error
}
