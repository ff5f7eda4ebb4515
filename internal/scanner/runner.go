package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/khanhnv2901/safepi/internal/validate"
)

// invalidDomainReason is the fixed rejection message for inputs that never
// reach the network.
const invalidDomainReason = "Invalid domain format"

var scanSeparator = strings.Repeat("-", 54)

// NewScanLimiter returns the limiter that spaces consecutive scans at least
// interval apart. The initial burst token is drained up front so the first
// inter-domain wait already honors the full interval instead of passing a
// back-to-back pair through.
func NewScanLimiter(interval time.Duration) *rate.Limiter {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.Allow()
	return limiter
}

// RenderFunc turns a completed payload plus the threshold into the block of
// text (or HTML document) shown or persisted for one domain.
type RenderFunc func(payload *ScanPayload, passingScore int) (string, error)

// PersistFunc stores the rendered document for a domain and returns the
// artifact path. A validate.ErrPathEscape from here aborts the whole run.
type PersistFunc func(domain, document string) (string, error)

// SummaryFunc prints the aggregate summary once a multi-domain run finishes.
type SummaryFunc func(w io.Writer, results []Result)

// Runner drives the per-domain loop: validate, request, classify, render,
// persist, then wait out the limiter before the next domain. It processes
// domains strictly in order, one at a time; the limiter spacing is the
// contract that keeps the tool polite to the shared API.
type Runner struct {
	Client       *Client
	PassingScore int
	Render       RenderFunc
	Persist      PersistFunc // nil unless the run produces HTML artifacts
	PrintSummary SummaryFunc // nil selects the plain built-in summary
	Limiter      *rate.Limiter
	Out          io.Writer
	Log          *zap.SugaredLogger
}

// Run scans every domain in order and returns one Result per completed
// attempt. The returned error is reserved for run-fatal conditions: a
// canceled context or an artifact path escaping its root. Per-domain
// failures land in the result list instead and never stop the loop.
func (r *Runner) Run(ctx context.Context, domains []string) ([]Result, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	results := make([]Result, 0, len(domains))
	for i, domain := range domains {
		if i > 0 {
			fmt.Fprintln(out, scanSeparator)
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx); err != nil {
					return results, fmt.Errorf("scan loop interrupted: %w", err)
				}
			}
		}

		result, err := r.scanOne(ctx, out, log, domain)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	if len(domains) > 1 {
		if r.PrintSummary != nil {
			r.PrintSummary(out, results)
		} else {
			printPlainSummary(out, results)
		}
	}
	return results, nil
}

func (r *Runner) scanOne(ctx context.Context, out io.Writer, log *zap.SugaredLogger, domain string) (Result, error) {
	if !validate.IsValidDomain(domain) {
		log.Infof("rejected domain %q before request", domain)
		return r.failDomain(out, domain, invalidDomainReason), nil
	}

	resp, err := r.Client.Scan(ctx, domain)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("scan loop interrupted: %w", ctx.Err())
		}
		log.Errorf("scan failed for %s: %v", domain, err)
		return r.failDomain(out, domain, err.Error()), nil
	}
	if resp.StatusCode != http.StatusOK {
		return r.failDomain(out, domain, fmt.Sprintf("scan API returned HTTP %d", resp.StatusCode)), nil
	}
	if resp.Payload.Error != "" {
		return r.failDomain(out, domain, resp.Payload.Error), nil
	}

	payload := resp.Payload
	payload.Host = domain
	doc, err := r.Render(&payload, r.PassingScore)
	if err != nil {
		return r.failDomain(out, domain, fmt.Sprintf("render report: %v", err)), nil
	}

	if r.Persist != nil {
		path, err := r.Persist(domain, doc)
		if err != nil {
			if errors.Is(err, validate.ErrPathEscape) {
				return Result{}, fmt.Errorf("write report for %s: %w", domain, err)
			}
			return r.failDomain(out, domain, fmt.Sprintf("write report: %v", err)), nil
		}
		fmt.Fprintf(out, "Report saved: %s\n", path)
	} else {
		fmt.Fprintln(out, doc)
	}

	result := newScoredResult(domain, payload.Score, r.PassingScore)
	log.Infof("scan complete domain=%s status=%s score=%d", domain, result.Status, result.Score)
	return result, nil
}

func (r *Runner) failDomain(out io.Writer, domain, reason string) Result {
	fmt.Fprintf(out, "Error scanning %s: %s\n", domain, reason)
	return newErrorResult(domain, reason)
}

func printPlainSummary(w io.Writer, results []Result) {
	fmt.Fprintln(w, scanSeparator)
	fmt.Fprintln(w, "Scan Summary")
	for _, res := range results {
		fmt.Fprintf(w, "  %s: %s\n", res.Domain, strings.ToUpper(string(res.Status)))
	}
	passed, failed, errored := CountByStatus(results)
	fmt.Fprintf(w, "Passed: %d  Failed: %d  Errors: %d  Total: %d\n",
		passed, failed, errored, len(results))
}
