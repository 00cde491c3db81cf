package analysis

import "time"

// Record is the persisted form of a result, as written to a result log.
type Record struct {
	ID             string    `json:"id"`
	Line           string    `json:"line"`
	Classification string    `json:"classification"`
	Score          float64   `json:"score"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// Record returns the persisted form of the result. CreatedAt is in UTC.
func (r *Result) Record() Record {
	return Record{
		ID:             r.id,
		Line:           r.Line(),
		Classification: string(r.classification),
		Score:          r.score,
		Text:           r.text,
		CreatedAt:      r.createdAt.UTC(),
	}
}
