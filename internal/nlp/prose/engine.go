// Package prose adapts github.com/jdkato/prose to the analysis pipeline:
// punkt-style sentence segmentation, Treebank tokenization and averaged
// perceptron POS tagging.
package prose

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// loadModel builds prose's bundled POS model from an empty tagged document.
var loadModel = func() (*prose.Model, error) {
	doc, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithTokenization(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("load pos model: %w", err)
	}
	return doc.Model, nil
}

// Engine splits and tags English text with prose's bundled models.
// prose does not lemmatize, so every lemma is the lower-cased surface.
// The POS model is loaded once and shared by every call.
type Engine struct {
	model *prose.Model
}

// New creates an engine and loads the POS model.
func New() (*Engine, error) {
	model, err := loadModel()
	if err != nil {
		return nil, err
	}
	return &Engine{model: model}, nil
}

// Split segments text into sentences and tokenizes each one.
func (e *Engine) Split(ctx context.Context, text string) ([][]string, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(e.model),
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	var out [][]string
	for _, s := range doc.Sentences() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sdoc, err := prose.NewDocument(s.Text,
			prose.UsingModel(e.model),
			prose.WithSegmentation(false),
			prose.WithTagging(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			return nil, fmt.Errorf("tokenize: %w", err)
		}
		toks := sdoc.Tokens()
		if len(toks) == 0 {
			continue
		}
		words := make([]string, len(toks))
		for i, t := range toks {
			words[i] = t.Text
		}
		out = append(out, words)
	}
	return out, nil
}

// Tag POS-tags each sentence. When prose re-tokenizes a sentence
// differently from the input words, each word is tagged on its own so the
// output stays aligned with the input.
func (e *Engine) Tag(ctx context.Context, sentences [][]string) ([]token.Sentence, error) {
	out := make([]token.Sentence, len(sentences))
	for i, words := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tags, err := e.tagWords(words)
		if err != nil {
			return nil, err
		}
		sent := make(token.Sentence, len(words))
		for j, w := range words {
			sent[j] = token.New(w, strings.ToLower(w), tags[j])
		}
		out[i] = sent
	}
	return out, nil
}

func (e *Engine) tagWords(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}
	toks, err := e.tagText(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	if aligned(toks, words) {
		tags := make([]string, len(toks))
		for i, t := range toks {
			tags[i] = t.Tag
		}
		return tags, nil
	}

	tags := make([]string, len(words))
	for i, w := range words {
		wt, err := e.tagText(w)
		if err != nil {
			return nil, err
		}
		tags[i] = "NN"
		if len(wt) > 0 {
			tags[i] = wt[0].Tag
		}
	}
	return tags, nil
}

// aligned reports whether prose kept the input words as its tokens.
func aligned(toks []prose.Token, words []string) bool {
	if len(toks) != len(words) {
		return false
	}
	for i, t := range toks {
		if t.Text != words[i] {
			return false
		}
	}
	return true
}

func (e *Engine) tagText(text string) ([]prose.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(e.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("pos tag: %w", err)
	}
	return doc.Tokens(), nil
}
