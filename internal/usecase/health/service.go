package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	lexicon   Lexicon
	resultLog ResultLogPinger
}

// New creates a Service. resultLog can be nil.
func New(lexicon Lexicon, resultLog ResultLogPinger) *Service {
	return &Service{lexicon: lexicon, resultLog: resultLog}
}

// Check runs health checks against all components. An empty lexicon cannot
// classify anything and makes the service unhealthy; a failing result log
// only degrades it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.lexicon == nil || s.lexicon.Len() == 0 {
		checks["lexicon"] = CheckError
	} else {
		checks["lexicon"] = CheckOK
	}

	if s.resultLog != nil {
		if err := s.resultLog.Ping(ctx); err != nil {
			checks["result_log"] = CheckError
		} else {
			checks["result_log"] = CheckOK
		}
	}

	status := Healthy
	switch {
	case checks["lexicon"] == CheckError:
		status = Unhealthy
	case checks["result_log"] == CheckError:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
