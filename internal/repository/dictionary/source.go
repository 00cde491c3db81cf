// Package dictionary reads polarity and modifier dictionaries from YAML files.
//
// A dictionary file is a single mapping from phrase to a sequence of tags:
//
//	nice: [positive]
//	not at all good: [negative]
//	very: [inc]
package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/sentilex/internal/domain"
	"github.com/kailas-cloud/sentilex/internal/domain/lexicon"
)

var _ lexicon.Source = (*FileSource)(nil)

// SyntaxError reports a structurally invalid dictionary.
type SyntaxError struct {
	Source string
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
	}
	return e.Source + ": " + e.Reason
}

// Unwrap lets callers match any syntax error with domain.ErrMalformedDictionary.
func (e *SyntaxError) Unwrap() error { return domain.ErrMalformedDictionary }

// FileSource is a YAML dictionary on disk.
type FileSource struct {
	name string
	path string
}

// NewFileSource creates a source. An empty name defaults to the file's base name.
func NewFileSource(name, path string) *FileSource {
	if name == "" {
		name = filepath.Base(path)
	}
	return &FileSource{name: name, path: path}
}

// Name returns the dictionary name.
func (s *FileSource) Name() string { return s.name }

// Path returns the file path.
func (s *FileSource) Path() string { return s.path }

// Entries reads and parses the file. Entries keep document order.
func (s *FileSource) Entries() ([]lexicon.Entry, error) {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return Parse(s.name, data)
}

// Parse decodes a YAML dictionary. An empty document is an empty dictionary.
func Parse(name string, data []byte) ([]lexicon.Entry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &SyntaxError{Source: name, Reason: err.Error()}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &SyntaxError{Source: name, Line: root.Line, Reason: "top level must be a mapping of phrase to tags"}
	}

	entries := make([]lexicon.Entry, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, &SyntaxError{Source: name, Line: keyNode.Line, Reason: "phrase must be a scalar"}
		}
		phrase := lexicon.Normalize(keyNode.Value)
		if phrase == "" {
			return nil, &SyntaxError{Source: name, Line: keyNode.Line, Reason: "empty phrase"}
		}
		// Case variants are distinct YAML keys; the lexicon merges their tags.
		if first, dup := seen[keyNode.Value]; dup {
			return nil, &SyntaxError{
				Source: name,
				Line:   keyNode.Line,
				Reason: fmt.Sprintf("phrase %q already defined on line %d", keyNode.Value, first),
			}
		}
		seen[keyNode.Value] = keyNode.Line

		tags, err := parseTags(name, phrase, valNode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, lexicon.Entry{Phrase: keyNode.Value, Tags: tags})
	}
	return entries, nil
}

func parseTags(name, phrase string, n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, &SyntaxError{Source: name, Line: n.Line, Reason: fmt.Sprintf("tags of %q must be a sequence", phrase)}
	}
	tags := make([]string, 0, len(n.Content))
	for _, t := range n.Content {
		if t.Kind != yaml.ScalarNode || t.Value == "" {
			return nil, &SyntaxError{Source: name, Line: t.Line, Reason: fmt.Sprintf("tag of %q must be a non-empty string", phrase)}
		}
		tags = append(tags, t.Value)
	}
	return tags, nil
}

// Spec names one dictionary file.
type Spec struct {
	Name string
	Path string
}

// Load builds a lexicon from dictionary files, merged in the given order.
func Load(specs []Spec) (*lexicon.Lexicon, error) {
	sources := make([]lexicon.Source, len(specs))
	for i, sp := range specs {
		sources[i] = NewFileSource(sp.Name, sp.Path)
	}
	return lexicon.Load(sources...)
}
