package rules

import (
	"context"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"don't", []string{"do", "n't"}},
		{"Can't", []string{"Ca", "n't"}},
		{"can’t", []string{"ca", "n’t"}},
		{"It's", []string{"It", "'s"}},
		{"they're", []string{"they", "'re"}},
		{"I'm", []string{"I", "'m"}},
		{"'s", []string{"'s"}},
		{"good", []string{"good"}},
	}
	for _, tc := range tests {
		if got := Tokenize(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			"two sentences",
			"This is not good. I loved it!",
			[][]string{{"This", "is", "not", "good", "."}, {"I", "loved", "it", "!"}},
		},
		{
			"clitics and abbreviations",
			"Don't buy it. Mr. Smith can't help",
			[][]string{{"Do", "n't", "buy", "it", "."}, {"Mr", ".", "Smith", "ca", "n't", "help"}},
		},
		{
			"numbers and commas",
			"Cheap, 3.5 stars",
			[][]string{{"Cheap", ",", "3.5", "stars"}},
		},
		{
			"ellipsis",
			"Well... fine",
			[][]string{{"Well", "..."}, {"fine"}},
		},
		{
			"no as a word ends a sentence",
			"My answer is no. It was good",
			[][]string{{"My", "answer", "is", "no", "."}, {"It", "was", "good"}},
		},
		{
			"no before a number",
			"Room No. 5 was fine",
			[][]string{{"Room", "No", ".", "5", "was", "fine"}},
		},
		{
			"no space after period",
			"end.Next",
			[][]string{{"end.Next"}},
		},
		{
			"newlines are whitespace",
			"Bad.\nVery bad.",
			[][]string{{"Bad", "."}, {"Very", "bad", "."}},
		},
	}
	s := NewSplitter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Split(context.Background(), tc.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Split = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	got, err := NewSplitter().Split(context.Background(), "   ")
	if err != nil || len(got) != 0 {
		t.Errorf("Split(blank) = %v, %v", got, err)
	}
}

func TestSplit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSplitter().Split(ctx, "text"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestTagWords(t *testing.T) {
	tests := []struct {
		words []string
		want  []string
	}{
		{[]string{"This", "is", "not", "good", "."}, []string{"DT", "VBZ", "RB", "JJ", "."}},
		{[]string{"I", "loved", "it", "!"}, []string{"PRP", "VBD", "PRP", "."}},
		{[]string{"I", "want", "to", "love"}, []string{"PRP", "NN", "TO", "VB"}},
		{[]string{"it", "was", "ruined"}, []string{"PRP", "VBD", "VBN"}},
		{[]string{"it", "'s", "fine"}, []string{"PRP", "VBZ", "JJ"}},
		{[]string{"the", "kindness", "of", "Anna"}, []string{"DT", "NN", "IN", "NNP"}},
		{[]string{"3.5", "stars", ",", "really"}, []string{"CD", "NNS", ",", "RB"}},
		{[]string{"a", "wonderful", "ending"}, []string{"DT", "JJ", "VBG"}},
	}
	tagger := NewTagger()
	for _, tc := range tests {
		if got := tagger.TagWords(tc.words); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("TagWords(%q) = %q, want %q", tc.words, got, tc.want)
		}
	}
}

func TestTag_BuildsTokens(t *testing.T) {
	got, err := NewTagger().Tag(context.Background(), [][]string{{"It", "is", "n't", "Good"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 4 {
		t.Fatalf("unexpected shape: %+v", got)
	}

	wantLemmas := []string{"it", "be", "not", "good"}
	for i, tok := range got[0] {
		if tok.Lemma() != wantLemmas[i] {
			t.Errorf("token %d lemma = %q, want %q", i, tok.Lemma(), wantLemmas[i])
		}
		if len(tok.Tags()) != 1 {
			t.Errorf("token %d tags = %v, want exactly one POS tag", i, tok.Tags())
		}
	}
	if got[0][3].Surface() != "Good" {
		t.Errorf("surface must keep case, got %q", got[0][3].Surface())
	}
}

func TestLemma(t *testing.T) {
	tests := map[string]string{
		"Was":   "be",
		"n’t":   "not",
		"ca":    "can",
		"Films": "films",
		"good":  "good",
	}
	for in, want := range tests {
		if got := Lemma(in); got != want {
			t.Errorf("Lemma(%q) = %q, want %q", in, got, want)
		}
	}
}
