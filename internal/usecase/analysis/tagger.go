package analysis

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/sentilex/internal/domain/expression"
	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// MatchOn selects which token field phrase lookups are built from.
type MatchOn string

// MatchOn values.
const (
	MatchForm  MatchOn = "form"
	MatchLemma MatchOn = "lemma"
)

// IsValid checks if the value is one of the supported fields.
func (m MatchOn) IsValid() bool {
	return m == MatchForm || m == MatchLemma
}

// Tagger annotates POS-tagged sentences with dictionary tags using greedy
// longest-match, left-to-right phrase matching. It is immutable and safe for
// concurrent use.
type Tagger struct {
	dict    Dictionary
	matchOn MatchOn
}

// NewTagger creates a tagger. An unknown matchOn falls back to MatchForm.
func NewTagger(dict Dictionary, matchOn MatchOn) *Tagger {
	if !matchOn.IsValid() {
		matchOn = MatchForm
	}
	return &Tagger{dict: dict, matchOn: matchOn}
}

// Tag converts a sentence into tagged expressions.
//
// From each start index the widest window (up to the lexicon's longest
// phrase) is tried first and shrunk from the right until a phrase matches.
// A match consumes the whole window; a single-token match keeps the token's
// own tags after the dictionary tags. A token no window matches is emitted
// unchanged. Consumed tokens are never revisited.
func (t *Tagger) Tag(sentence token.Sentence) expression.Sentence {
	n := len(sentence)
	out := make(expression.Sentence, 0, n)

	window := t.dict.MaxKeySize()
	if window <= 0 {
		window = n
	}
	window = max(window, 1)

	for i := 0; i < n; {
		e, ok := t.longestMatch(sentence, i, min(i+window, n))
		if !ok {
			out = append(out, expression.FromToken(sentence[i]))
			i++
			continue
		}
		out = append(out, e)
		i += e.Width()
	}
	return out
}

// TagAll tags every sentence of a document.
func (t *Tagger) TagAll(sentences []token.Sentence) []expression.Sentence {
	out := make([]expression.Sentence, len(sentences))
	for i, s := range sentences {
		out[i] = t.Tag(s)
	}
	return out
}

func (t *Tagger) longestMatch(sentence token.Sentence, i, end int) (expression.Expression, bool) {
	for j := end; j > i; j-- {
		span := sentence[i:j]
		tags, ok := t.dict.Get(t.literal(span))
		if !ok {
			continue
		}
		if len(span) == 1 {
			tags = slices.Concat(tags, span[0].Tags())
		}
		return expression.New(joinSurface(span), joinLemma(span), len(span), tags...), true
	}
	return expression.Expression{}, false
}

// literal builds the lookup key of a span from one field for the whole pass.
func (t *Tagger) literal(span token.Sentence) string {
	if t.matchOn == MatchLemma {
		return strings.ToLower(joinLemma(span))
	}
	return strings.ToLower(joinSurface(span))
}

func joinSurface(span token.Sentence) string {
	parts := make([]string, len(span))
	for i, tok := range span {
		parts[i] = tok.Surface()
	}
	return strings.Join(parts, " ")
}

func joinLemma(span token.Sentence) string {
	parts := make([]string, len(span))
	for i, tok := range span {
		parts[i] = tok.Lemma()
	}
	return strings.Join(parts, " ")
}
