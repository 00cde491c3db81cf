// Package rules is a deterministic, model-free sentence splitter and
// part-of-speech tagger for English. It produces Penn Treebank tags.
package rules

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenRe matches words (with inner apostrophes and hyphens), numbers,
// ellipses and single punctuation marks.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*(?:[-.,][\p{L}\p{N}]+)*|\.{3}|…|[^\s\p{L}\p{N}]`)

var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// abbreviations never end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "sr": true, "jr": true,
	"st": true, "vs": true, "etc": true, "inc": true, "ltd": true, "co": true,
	"e.g": true, "i.e": true,
}

// numberAbbreviations end a sentence unless a number follows ("No. 5").
var numberAbbreviations = map[string]bool{"no": true, "nos": true, "vol": true}

// Splitter splits text into sentences of Treebank-style tokens.
type Splitter struct{}

// NewSplitter creates a splitter.
func NewSplitter() *Splitter { return &Splitter{} }

// Split returns sentences of words. A sentence ends at ".", "!", "?" or an
// ellipsis followed by whitespace or the end of text.
func (s *Splitter) Split(ctx context.Context, text string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		out     [][]string
		current []string
	)
	locs := tokenRe.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		tok := text[loc[0]:loc[1]]
		current = append(current, Tokenize(tok)...)

		if !isTerminator(tok) || !boundaryAfter(text, loc[1]) {
			continue
		}
		if tok == "." && i > 0 && locs[i-1][1] == loc[0] {
			prev := strings.ToLower(text[locs[i-1][0]:locs[i-1][1]])
			if abbreviations[prev] {
				continue
			}
			if numberAbbreviations[prev] && i+1 < len(locs) && startsWithDigit(text[locs[i+1][0]:]) {
				continue
			}
		}
		out = append(out, current)
		current = nil
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out, nil
}

// Tokenize splits one raw token into Treebank tokens: "don't" -> "do", "n't";
// "it's" -> "it", "'s". Curly apostrophes are kept in the output surface.
func Tokenize(word string) []string {
	norm := strings.ReplaceAll(strings.ToLower(word), "’", "'")
	for _, c := range clitics {
		if len(norm) > len(c) && strings.HasSuffix(norm, c) {
			cut := len(word) - byteLenOfSuffix(word, len([]rune(c)))
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

// byteLenOfSuffix returns the byte length of the last n runes of s.
func byteLenOfSuffix(s string, n int) int {
	r := []rune(s)
	return len(string(r[len(r)-n:]))
}

func isTerminator(tok string) bool {
	switch tok {
	case ".", "!", "?", "...", "…":
		return true
	}
	return false
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsSpace(r)
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}
