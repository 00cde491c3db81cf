package lexicon

import (
	"errors"
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domlexicon "github.com/kailas-cloud/sentilex/internal/domain/lexicon"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	lex, err := domlexicon.Load(
		domlexicon.MapSource{Label: "positive", Dictionary: map[string][]string{"good": {"positive"}, "very good": {"positive"}}},
		domlexicon.MapSource{Label: "inv", Dictionary: map[string][]string{"not": {"inv"}, "good": {"positive"}}},
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(lex)
}

func TestStats(t *testing.T) {
	st := newTestService(t).Stats()
	if st.Entries != 3 || st.MaxKeySize != 2 {
		t.Errorf("stats = %+v", st)
	}
	if !slices.Equal(st.Sources, []string{"positive", "inv"}) {
		t.Errorf("sources = %v", st.Sources)
	}
}

func TestLookup(t *testing.T) {
	svc := newTestService(t)

	e, err := svc.Lookup("  Good ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Phrase != "good" || !slices.Equal(e.Tags, []string{"positive", "positive"}) {
		t.Errorf("entry = %+v", e)
	}

	e.Tags[0] = "mutated"
	again, _ := svc.Lookup("good")
	if again.Tags[0] != "positive" {
		t.Error("lookup must return a copy of the tags")
	}
}

func TestLookup_Errors(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Lookup("terrible"); !errors.Is(err, domain.ErrPhraseNotFound) {
		t.Errorf("error = %v, want ErrPhraseNotFound", err)
	}
	if _, err := svc.Lookup("  "); !errors.Is(err, domain.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestPublishMetrics(t *testing.T) {
	newTestService(t).PublishMetrics()

	if got := testutil.ToFloat64(metrics.LexiconEntries); got != 3 {
		t.Errorf("lexicon_entries = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.LexiconMaxKeySize); got != 2 {
		t.Errorf("lexicon_max_key_size = %v, want 2", got)
	}
}
