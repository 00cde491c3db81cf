package resultlog

import (
	"time"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
)

var baseTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func testResult(id, text string, score float64, at time.Time) *domanalysis.Result {
	r := domanalysis.New(id, text, domanalysis.Trace{}, []float64{score}, score, at)
	return &r
}
