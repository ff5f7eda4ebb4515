package report

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

// Format selects which renderer a run uses for its per-domain output.
type Format string

const (
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
	FormatHTML   Format = "html"
)

// ParseFormat validates a --report flag value. The match is case-insensitive;
// anything outside the three known formats is rejected rather than defaulted.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatText:
		return FormatText, nil
	case FormatPretty:
		return FormatPretty, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (use text|pretty|html)", value)
	}
}

// Renderer returns the formatter backing a parsed format value.
func (f Format) Renderer() scanner.RenderFunc {
	switch f {
	case FormatText:
		return Text
	case FormatHTML:
		return HTML
	default:
		return Pretty
	}
}

const (
	unknownHost  = "Unknown"
	notAvailable = "N/A"
)

func hostLabel(host string) string {
	if host == "" {
		return unknownHost
	}
	return host
}

func orNA(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

func statusLabel(score, passingScore int) string {
	if score >= passingScore {
		return "PASS"
	}
	return "FAIL"
}
