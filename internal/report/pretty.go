package report

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

// Pretty renders the same fields as Text wrapped in ANSI colors: the status
// keyed pass/fail, the grade looked up from the fixed table, the numeric
// score green or red against the threshold. The tests line folds passed and
// failed counts together, so a clean scan reads "10/10 passed, 0 failed".
func Pretty(p *scanner.ScanPayload, passingScore int) (string, error) {
	status := colorError("FAIL")
	score := colorError(fmt.Sprintf("%d", p.Score))
	if p.Score >= passingScore {
		status = colorSuccess("PASS")
		score = colorSuccess(fmt.Sprintf("%d", p.Score))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scan Report: %s\n", colorInfo(hostLabel(p.Host)))
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "Grade: %s\n", gradeColor(p.Grade)(orNA(p.Grade)))
	fmt.Fprintf(&b, "Score: %s/%d\n", score, passingScore)
	fmt.Fprintf(&b, "Tests: %d/%d passed, %d failed\n", p.TestsPassed, p.TestsQuantity, p.TestsFailed)
	fmt.Fprintf(&b, "Scanned At: %s\n", orNA(p.ScannedAt))
	fmt.Fprintf(&b, "Details URL: %s", orNA(p.DetailsURL))
	return b.String(), nil
}
