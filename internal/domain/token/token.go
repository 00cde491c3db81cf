package token

// Token is a POS-tagged word as produced by the preprocessing collaborators.
type Token struct {
	surface string
	lemma   string
	tags    []string
}

// New creates a token. Tags are copied.
func New(surface, lemma string, tags ...string) Token {
	return Token{
		surface: surface,
		lemma:   lemma,
		tags:    append([]string(nil), tags...),
	}
}

// Surface returns the word as it appeared in the text.
func (t Token) Surface() string { return t.surface }

// Lemma returns the base form of the word.
func (t Token) Lemma() string { return t.lemma }

// Tags returns the token's tags (initially a single POS tag).
// The returned slice must not be modified.
func (t Token) Tags() []string { return t.tags }

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// Surfaces returns the surface forms of the sentence, in order.
func (s Sentence) Surfaces() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.surface
	}
	return out
}
