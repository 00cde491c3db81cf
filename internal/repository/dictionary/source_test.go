package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kailas-cloud/sentilex/internal/domain"
)

func writeDict(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParse_KeepsDocumentOrder(t *testing.T) {
	entries, err := Parse("positive", []byte("nice: [positive]\nawesome:\n  - positive\n  - positive\nvery good: [positive]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Phrase != "nice" || entries[2].Phrase != "very good" {
		t.Errorf("order = %q, %q", entries[0].Phrase, entries[2].Phrase)
	}
	if !slices.Equal(entries[1].Tags, []string{"positive", "positive"}) {
		t.Errorf("awesome tags = %v", entries[1].Tags)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, body := range []string{"", "# only a comment\n", "~\n"} {
		entries, err := Parse("empty", []byte(body))
		if err != nil {
			t.Errorf("Parse(%q) error: %v", body, err)
		}
		if len(entries) != 0 {
			t.Errorf("Parse(%q) = %v, want no entries", body, entries)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not a mapping", "- positive\n- negative\n"},
		{"scalar value", "nice: positive\n"},
		{"null value", "nice:\n"},
		{"nested tag", "nice: [[positive]]\n"},
		{"empty tag", "nice: ['']\n"},
		{"duplicate phrase", "nice: [positive]\nnice: [positive]\n"},
		{"empty phrase", "'  ': [positive]\n"},
		{"invalid yaml", "nice: [positive\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad", []byte(tc.body))
			if !errors.Is(err, domain.ErrMalformedDictionary) {
				t.Fatalf("error = %v, want ErrMalformedDictionary", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) || se.Source != "bad" {
				t.Errorf("expected *SyntaxError for source bad, got %#v", err)
			}
		})
	}
}

func TestParse_DuplicateReportsLines(t *testing.T) {
	_, err := Parse("dup", []byte("nice: [positive]\ngood: [positive]\nnice: [positive]\n"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Line != 3 {
		t.Errorf("line = %d, want 3", se.Line)
	}
	if se.Error() != `dup:3: phrase "nice" already defined on line 1` {
		t.Errorf("message = %q", se.Error())
	}
}

func TestParse_CaseVariantsAreNotDuplicates(t *testing.T) {
	entries, err := Parse("positive", []byte("Good: [positive]\ngood: [positive]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].Phrase != "Good" || entries[1].Phrase != "good" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestLoad_MergesCaseVariantsInOneFile(t *testing.T) {
	path := writeDict(t, "positive.yml", "Good: [positive]\ngood: [positive]\n")

	lex, err := Load([]Spec{{Name: "positive", Path: path}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tags, ok := lex.Get("GOOD")
	if !ok || !slices.Equal(tags, []string{"positive", "positive"}) {
		t.Errorf("tags = %v, %v", tags, ok)
	}
	if lex.Len() != 1 {
		t.Errorf("entries = %d, want 1", lex.Len())
	}
}

func TestFileSource_Name(t *testing.T) {
	if got := NewFileSource("", "/dicts/positive.yml").Name(); got != "positive.yml" {
		t.Errorf("default name = %q", got)
	}
	if got := NewFileSource("pos", "/dicts/positive.yml").Name(); got != "pos" {
		t.Errorf("name = %q", got)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("gone", filepath.Join(t.TempDir(), "gone.yml")).Entries()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestLoad_MergesFilesInOrder(t *testing.T) {
	pos := writeDict(t, "positive.yml", "good: [positive]\nnice: [positive]\n")
	inv := writeDict(t, "inv.yml", "not: [inv]\nnot good: [negative]\n")
	extra := writeDict(t, "extra.yml", "good: [positive]\n")

	lex, err := Load([]Spec{{Name: "positive", Path: pos}, {Name: "inv", Path: inv}, {Path: extra}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lex.Len() != 4 {
		t.Errorf("len = %d, want 4", lex.Len())
	}
	if lex.MaxKeySize() != 2 {
		t.Errorf("max key size = %d, want 2", lex.MaxKeySize())
	}
	if tags, _ := lex.Get("good"); !slices.Equal(tags, []string{"positive", "positive"}) {
		t.Errorf("good tags = %v", tags)
	}
	if !slices.Equal(lex.Sources(), []string{"positive", "inv", "extra.yml"}) {
		t.Errorf("sources = %v", lex.Sources())
	}
}

func TestLoad_FailsWholeLoad(t *testing.T) {
	good := writeDict(t, "positive.yml", "good: [positive]\n")
	bad := writeDict(t, "negative.yml", "bad: negative\n")

	lex, err := Load([]Spec{{Name: "positive", Path: good}, {Name: "negative", Path: bad}})
	if lex != nil {
		t.Error("expected no lexicon on failure")
	}
	if !errors.Is(err, domain.ErrLexiconLoad) || !errors.Is(err, domain.ErrMalformedDictionary) {
		t.Errorf("error = %v", err)
	}
}
