package report

import (
	"strings"
	"testing"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

func renderHTML(t *testing.T, p *scanner.ScanPayload, passingScore int) string {
	t.Helper()
	got, err := HTML(p, passingScore)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	return got
}

func TestHTMLEscapesHostEverywhere(t *testing.T) {
	doc := renderHTML(t, &scanner.ScanPayload{
		Host:  `<script>alert("x")</script>`,
		Score: 100,
	}, 100)

	if strings.Contains(doc, "<script>") {
		t.Error("host interpolated unescaped into the document")
	}
	escaped := "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"
	if !strings.Contains(doc, "<title>Scan Report: "+escaped+"</title>") {
		t.Error("escaped host missing from title")
	}
	if !strings.Contains(doc, "<h1>Scan Report: "+escaped+"</h1>") {
		t.Error("escaped host missing from body heading")
	}
}

func TestHTMLBadgeFollowsThreshold(t *testing.T) {
	pass := renderHTML(t, &scanner.ScanPayload{Host: "example.com", Score: 100}, 100)
	if !strings.Contains(pass, `class="badge pass">PASS<`) {
		t.Errorf("missing pass badge: %q", pass)
	}

	fail := renderHTML(t, &scanner.ScanPayload{Host: "example.com", Score: 99}, 100)
	if !strings.Contains(fail, `class="badge fail">FAIL<`) {
		t.Errorf("missing fail badge: %q", fail)
	}
}

func TestHTMLGradeColorBands(t *testing.T) {
	cases := []struct {
		grade string
		class string
	}{
		{"A+", "grade-a"},
		{"A-", "grade-a"},
		{"B", "grade-b"},
		{"C+", "grade-low"},
		{"F", "grade-low"},
		{"", "grade-low"},
	}
	for _, tc := range cases {
		doc := renderHTML(t, &scanner.ScanPayload{Host: "example.com", Grade: tc.grade, Score: 50}, 100)
		if !strings.Contains(doc, `class="grade `+tc.class+`"`) {
			t.Errorf("grade %q: expected band %s in document", tc.grade, tc.class)
		}
	}
}

func TestHTMLMetricRows(t *testing.T) {
	doc := renderHTML(t, &scanner.ScanPayload{
		Host:             "example.com",
		Score:            85,
		TestsPassed:      9,
		TestsQuantity:    10,
		TestsFailed:      1,
		AlgorithmVersion: 4,
		ScannedAt:        "2026-08-29T10:00:00Z",
	}, 70)

	for _, want := range []string{
		"<tr><th>Score</th><td>85/70</td></tr>",
		"<tr><th>Tests Passed</th><td>9</td></tr>",
		"<tr><th>Tests Failed</th><td>1</td></tr>",
		"<tr><th>Tests Total</th><td>10</td></tr>",
		"<tr><th>Algorithm Version</th><td>4</td></tr>",
		"Scanned at 2026-08-29T10:00:00Z",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in document", want)
		}
	}
	if !strings.Contains(doc, "Generated at ") {
		t.Error("missing generation timestamp in footer")
	}
}

func TestHTMLAlgorithmVersionFallback(t *testing.T) {
	doc := renderHTML(t, &scanner.ScanPayload{Host: "example.com", Score: 50}, 100)
	if !strings.Contains(doc, "<tr><th>Algorithm Version</th><td>N/A</td></tr>") {
		t.Error("absent algorithm version must render N/A")
	}
}

func TestHTMLDetailsLinkOnlyForValidURLs(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want bool
	}{
		{"https link", "https://developer.mozilla.org/observatory", true},
		{"http link", "http://example.com/results", true},
		{"absent", "", false},
		{"ftp scheme", "ftp://example.com/results", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"data scheme", "data:text/html,hi", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := renderHTML(t, &scanner.ScanPayload{
				Host:       "example.com",
				Score:      50,
				DetailsURL: tc.url,
			}, 100)
			hasLink := strings.Contains(doc, "<a href=")
			if hasLink != tc.want {
				t.Errorf("details url %q: link rendered = %v, want %v", tc.url, hasLink, tc.want)
			}
		})
	}
}

func TestHTMLDetailsLinkIsEscaped(t *testing.T) {
	doc := renderHTML(t, &scanner.ScanPayload{
		Host:       "example.com",
		Score:      50,
		DetailsURL: `https://example.com/results?a=1&b="2"`,
	}, 100)
	if !strings.Contains(doc, `href="https://example.com/results?a=1&amp;b=&quot;2&quot;"`) {
		t.Errorf("details link not escaped: %q", doc)
	}
}

func TestHTMLDocumentIsSelfContained(t *testing.T) {
	doc := renderHTML(t, &scanner.ScanPayload{Host: "example.com", Score: 100}, 100)
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("document must start with a doctype")
	}
	if !strings.Contains(doc, "<style>") {
		t.Error("document must inline its styles")
	}
	if !strings.Contains(doc, "</html>") {
		t.Error("document must be complete")
	}
}
