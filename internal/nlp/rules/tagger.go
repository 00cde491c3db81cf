package rules

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

var numberRe = regexp.MustCompile(`^[+-]?\d+(?:[.,]\d+)*%?$`)

// Tagger assigns Penn Treebank tags in two passes: a baseline from word
// tables and suffix heuristics, then contextual corrections.
type Tagger struct{}

// NewTagger creates a tagger.
func NewTagger() *Tagger { return &Tagger{} }

// Tag returns one token per word carrying its lemma and a single POS tag.
func (t *Tagger) Tag(ctx context.Context, sentences [][]string) ([]token.Sentence, error) {
	out := make([]token.Sentence, len(sentences))
	for i, words := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tags := t.TagWords(words)
		sent := make(token.Sentence, len(words))
		for j, w := range words {
			sent[j] = token.New(w, Lemma(w), tags[j])
		}
		out[i] = sent
	}
	return out, nil
}

// TagWords tags one sentence.
func (t *Tagger) TagWords(words []string) []string {
	tags := make([]string, len(words))
	for i, w := range words {
		tags[i] = baseline(w, i == 0)
	}

	for i := 1; i < len(words); i++ {
		prev, cur := tags[i-1], tags[i]
		lowerPrev := normalize(words[i-1])

		switch {
		// "the [run]", "a nice [walk]"
		case (prev == "DT" || prev == "PRP$" || prev == "JJ") && (cur == "VB" || cur == "VBP"):
			tags[i] = "NN"
		// "can [work]", "to [love]"
		case (prev == "MD" || prev == "TO") && (cur == "NN" || cur == "VBP" || cur == "VBD"):
			tags[i] = "VB"
		// "has [finished]", "was [ruined]"
		case cur == "VBD" && strings.HasSuffix(normalize(words[i]), "ed") && isHaveOrBe(lowerPrev):
			tags[i] = "VBN"
		// "it['s]" is a verb unless it follows a noun
		case normalize(words[i]) == "'s" && (prev == "PRP" || prev == "EX" || prev == "WP"):
			tags[i] = "VBZ"
		}
	}
	return tags
}

func baseline(word string, sentenceStart bool) string {
	if tag, ok := punctTags[word]; ok {
		return tag
	}
	lower := normalize(word)
	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if numberRe.MatchString(word) {
		return "CD"
	}
	if r, _ := utf8.DecodeRuneInString(word); r != utf8.RuneError {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && utf8.RuneCountInString(word) == 1 {
			return "SYM"
		}
		if unicode.IsUpper(r) && !sentenceStart {
			return "NNP"
		}
	}
	for _, s := range suffixTags {
		if len(lower) > len(s.suffix)+1 && strings.HasSuffix(lower, s.suffix) {
			return s.tag
		}
	}
	if len(lower) > 3 && strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && !strings.HasSuffix(lower, "us") {
		return "NNS"
	}
	return "NN"
}

// Lemma returns the lemma of a word: the lower-cased surface, or the base
// form of an irregular closed-class word.
func Lemma(word string) string {
	if l, ok := lemmas[normalize(word)]; ok {
		return l
	}
	return strings.ToLower(word)
}

func normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "’", "'")
}

func isHaveOrBe(lower string) bool {
	switch Lemma(lower) {
	case "have", "be":
		return true
	}
	return false
}
