package report

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/khanhnv2901/safepi/internal/scanner"
	"github.com/khanhnv2901/safepi/internal/validate"
)

//go:embed templates/scan.html
var scanTemplateFS embed.FS

// The document is rendered through text/template on purpose: every
// user-influenced field goes through the escape func below, which is the
// fixed entity table in validate.EscapeHTML. Keeping the escaping explicit
// in the markup makes the XSS defense reviewable in one place.
var scanTemplateFuncs = template.FuncMap{
	"escape": validate.EscapeHTML,
}

var scanTemplate = template.Must(
	template.New("scan.html").Funcs(scanTemplateFuncs).ParseFS(scanTemplateFS, "templates/scan.html"),
)

type htmlReportData struct {
	Host             string
	Status           string
	BadgeClass       string
	Grade            string
	GradeClass       string
	Score            int
	PassingScore     int
	TestsPassed      int
	TestsFailed      int
	TestsQuantity    int
	AlgorithmVersion string
	DetailsURL       string
	GeneratedAt      string
	ScannedAt        string
}

// gradeBand maps a grade to its document color band: A grades success,
// B grades warning, everything else (absent grades included) danger.
func gradeBand(grade string) string {
	switch {
	case strings.HasPrefix(grade, "A"):
		return "grade-a"
	case strings.HasPrefix(grade, "B"):
		return "grade-b"
	default:
		return "grade-low"
	}
}

// HTML renders one self-contained document for a scan: inline styles, a
// pass/fail badge, the color-banded grade, the metric rows, and a footer
// carrying both the generation and scan timestamps. The details link is
// emitted only when the payload URL passes validate.IsValidURL; anything
// else is dropped rather than linked.
func HTML(p *scanner.ScanPayload, passingScore int) (string, error) {
	status := statusLabel(p.Score, passingScore)

	algorithm := notAvailable
	if p.AlgorithmVersion != 0 {
		algorithm = strconv.Itoa(p.AlgorithmVersion)
	}

	data := htmlReportData{
		Host:             hostLabel(p.Host),
		Status:           status,
		BadgeClass:       strings.ToLower(status),
		Grade:            orNA(p.Grade),
		GradeClass:       gradeBand(p.Grade),
		Score:            p.Score,
		PassingScore:     passingScore,
		TestsPassed:      p.TestsPassed,
		TestsFailed:      p.TestsFailed,
		TestsQuantity:    p.TestsQuantity,
		AlgorithmVersion: algorithm,
		GeneratedAt:      time.Now().Format(time.RFC1123),
		ScannedAt:        orNA(p.ScannedAt),
	}
	if validate.IsValidURL(p.DetailsURL) {
		data.DetailsURL = p.DetailsURL
	}

	var buf bytes.Buffer
	if err := scanTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}
