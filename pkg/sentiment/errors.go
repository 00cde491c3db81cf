package sentiment

import "github.com/kailas-cloud/sentilex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrEmptyInput          = domain.ErrEmptyInput
	ErrLexiconLoad         = domain.ErrLexiconLoad
	ErrMalformedDictionary = domain.ErrMalformedDictionary
	ErrPhraseNotFound      = domain.ErrPhraseNotFound
)
