package scanner

// Status is the terminal classification for one domain.
type Status string

const (
	// StatusPass means the scan ran and the score met the threshold.
	StatusPass Status = "pass"
	// StatusFail means the scan ran but the score fell below the threshold.
	StatusFail Status = "fail"
	// StatusError means the scan never completed: the domain was rejected,
	// the transport failed, or the API reported an error.
	StatusError Status = "error"
)

// Result records the outcome for one domain. Results are append-only: the
// Runner creates each one when a domain's attempt concludes and nothing
// mutates them afterwards.
type Result struct {
	Domain       string `json:"domain"`
	Status       Status `json:"status"`
	Score        int    `json:"score,omitempty"`
	PassingScore int    `json:"passing_score,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// newScoredResult owns the threshold comparison so no caller can produce a
// result whose status disagrees with its score.
func newScoredResult(domain string, score, passingScore int) Result {
	status := StatusFail
	if score >= passingScore {
		status = StatusPass
	}
	return Result{
		Domain:       domain,
		Status:       status,
		Score:        score,
		PassingScore: passingScore,
	}
}

func newErrorResult(domain, reason string) Result {
	return Result{Domain: domain, Status: StatusError, Reason: reason}
}

// Passed reports whether the scan ran and met the threshold.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// CountByStatus tallies the run for summaries and telemetry.
func CountByStatus(results []Result) (passed, failed, errored int) {
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		default:
			errored++
		}
	}
	return passed, failed, errored
}

// ExitCode is the final, pure decision over a finished run. Any error forces
// a non-zero exit no matter what: an errored domain was never assessed, so
// the run cannot vouch for it. Below-threshold scores only fail the run when
// the caller opted in with failOnIssue.
func ExitCode(results []Result, failOnIssue bool) int {
	for _, r := range results {
		if r.Status == StatusError {
			return 1
		}
	}
	if failOnIssue {
		for _, r := range results {
			if r.Status == StatusFail {
				return 1
			}
		}
	}
	return 0
}
