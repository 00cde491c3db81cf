package domain

import "errors"

var (
	// ErrEmptyInput signals that no text was provided for analysis.
	ErrEmptyInput = errors.New("no input provided")
	// ErrLexiconLoad signals that the dictionaries could not be loaded.
	ErrLexiconLoad = errors.New("lexicon load failed")
	// ErrMalformedDictionary signals a dictionary source that does not decode to phrase -> tags.
	ErrMalformedDictionary = errors.New("malformed dictionary")
	// ErrPhraseNotFound signals a lexicon lookup miss at the API boundary.
	ErrPhraseNotFound = errors.New("phrase not found")
	// ErrResultLogUnavailable signals a result log sink that cannot accept or serve records.
	ErrResultLogUnavailable = errors.New("result log unavailable")
	// ErrNotImplemented signals an operation the configured backend does not support.
	ErrNotImplemented = errors.New("not implemented")
)

// KeyPrefix namespaces every key the service writes to a shared store.
const KeyPrefix = "sentilex:"
