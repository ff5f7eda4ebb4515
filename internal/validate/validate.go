// Package validate holds the input gates the scanner trusts: hostname and URL
// syntax checks, HTML entity escaping, and the output-path traversal defenses.
// Everything here is a pure function so the rules can be tested exhaustively.
package validate

import (
	"net/url"
	"strings"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// deniedFragments disqualify a domain outright, matched case-insensitively as
// substrings. Domains end up interpolated into a request URL and a report
// filename, so loopback targets and alternate schemes are rejected before any
// network activity happens.
var deniedFragments = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
	"file://",
	"javascript:",
	"data:",
	"ftp://",
	"ftps://",
}

// IsValidDomain reports whether input is a bare hostname that is safe to
// scan: at most 253 characters, dot-separated labels of 1-63 characters drawn
// from [A-Za-z0-9-], and free of the denied fragments above. Anything with a
// scheme, port, path, or query is rejected here rather than normalized.
func IsValidDomain(input string) bool {
	if input == "" || len(input) > maxDomainLength {
		return false
	}

	lowered := strings.ToLower(input)
	for _, fragment := range deniedFragments {
		if strings.Contains(lowered, fragment) {
			return false
		}
	}

	// Empty labels cover leading, trailing, and doubled dots.
	for _, label := range strings.Split(input, ".") {
		if !isValidLabel(label) {
			return false
		}
	}
	return true
}

func isValidLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabelLength {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

// IsValidURL reports whether input parses as an absolute http or https URL
// with a host. It decides nothing beyond link rendering: a false here means a
// details link is omitted, never that a scan fails.
func IsValidURL(input string) bool {
	if input == "" {
		return false
	}
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// htmlEscaper rewrites the five HTML metacharacters in one pass. Because the
// replacement is simultaneous, escaping already-escaped text can only add
// entities, never resurrect a live character.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns text with &, <, >, " and ' replaced by their entities.
// An empty input yields an empty string.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
