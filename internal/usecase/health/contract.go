package health

import "context"

// Lexicon reports the size of the loaded lexicon.
type Lexicon interface {
	Len() int
}

// ResultLogPinger checks result log availability.
type ResultLogPinger interface {
	Ping(ctx context.Context) error
}
