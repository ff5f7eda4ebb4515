package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

var summaryRule = strings.Repeat("-", 54)

func statusColor(status scanner.Status) sprintFunc {
	if status == scanner.StatusPass {
		return colorSuccess
	}
	return colorError
}

// Summary prints the aggregate block after a multi-domain run: one colored
// status line per domain in scan order, then the counts. It satisfies
// scanner.SummaryFunc and is injected into the Runner by cmd.
func Summary(w io.Writer, results []scanner.Result) {
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintln(w, "Scan Summary")
	for _, res := range results {
		label := strings.ToUpper(string(res.Status))
		fmt.Fprintf(w, "  %s: %s\n", res.Domain, statusColor(res.Status)(label))
	}
	passed, failed, errored := scanner.CountByStatus(results)
	fmt.Fprintf(w, "Passed: %d  Failed: %d  Errors: %d  Total: %d\n",
		passed, failed, errored, len(results))
}
