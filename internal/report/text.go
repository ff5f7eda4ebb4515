package report

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

// Text renders the plain report block for one scan: a header naming the
// domain and the seven fixed field lines. No color codes, safe to pipe.
func Text(p *scanner.ScanPayload, passingScore int) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Scan Report: %s\n", hostLabel(p.Host))
	fmt.Fprintf(&b, "Status: %s\n", statusLabel(p.Score, passingScore))
	fmt.Fprintf(&b, "Grade: %s\n", orNA(p.Grade))
	fmt.Fprintf(&b, "Score: %d/%d\n", p.Score, passingScore)
	fmt.Fprintf(&b, "Tests Passed: %d/%d\n", p.TestsPassed, p.TestsQuantity)
	fmt.Fprintf(&b, "Tests Failed: %d\n", p.TestsFailed)
	fmt.Fprintf(&b, "Scanned At: %s\n", orNA(p.ScannedAt))
	fmt.Fprintf(&b, "Details URL: %s", orNA(p.DetailsURL))
	return b.String(), nil
}
