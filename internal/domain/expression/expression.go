package expression

import (
	"slices"

	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// Expression is a token or a collapsed multi-token phrase annotated with
// polarity/modifier tags.
type Expression struct {
	surface string
	lemma   string
	tags    []string
	width   int
}

// New creates an expression covering width input tokens. Tags are copied.
func New(surface, lemma string, width int, tags ...string) Expression {
	return Expression{
		surface: surface,
		lemma:   lemma,
		tags:    append([]string(nil), tags...),
		width:   width,
	}
}

// FromToken wraps an unmatched token unchanged.
func FromToken(t token.Token) Expression {
	return New(t.Surface(), t.Lemma(), 1, t.Tags()...)
}

// Surface returns the space-joined surface forms of the covered tokens.
func (e Expression) Surface() string { return e.surface }

// Lemma returns the space-joined lemmas of the covered tokens.
func (e Expression) Lemma() string { return e.lemma }

// Tags returns the ordered tag sequence. The returned slice must not be modified.
func (e Expression) Tags() []string { return e.tags }

// Width returns the number of input tokens the expression covers.
func (e Expression) Width() int { return e.width }

// HasTag reports whether tag is present.
func (e Expression) HasTag(tag string) bool {
	return slices.Contains(e.tags, tag)
}

// Sentence is an ordered sequence of tagged expressions.
type Sentence []Expression
