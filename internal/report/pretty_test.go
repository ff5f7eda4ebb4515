package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/khanhnv2901/safepi/internal/scanner"
)

func renderPlainPretty(t *testing.T, p *scanner.ScanPayload, passingScore int) string {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	got, err := Pretty(p, passingScore)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	return got
}

func TestPrettyCleanScanReadsZeroFailed(t *testing.T) {
	got := renderPlainPretty(t, &scanner.ScanPayload{
		Host:          "example.com",
		Grade:         "A+",
		Score:         105,
		TestsPassed:   10,
		TestsQuantity: 10,
		TestsFailed:   0,
	}, 100)

	if !strings.Contains(got, "0 failed") {
		t.Errorf("clean scan must contain \"0 failed\": %q", got)
	}
	if !strings.Contains(got, "10/10 passed") {
		t.Errorf("missing passed counts: %q", got)
	}
	if !strings.Contains(got, "Status: PASS") {
		t.Errorf("missing pass status: %q", got)
	}
}

func TestPrettyAbsentHostRendersUnknown(t *testing.T) {
	got := renderPlainPretty(t, &scanner.ScanPayload{Score: 10}, 100)

	if !strings.Contains(got, "Scan Report: Unknown") {
		t.Errorf("absent host must render Unknown: %q", got)
	}
	if !strings.Contains(got, "Status: FAIL") {
		t.Errorf("below-threshold scan must read FAIL: %q", got)
	}
	if !strings.Contains(got, "Grade: N/A") {
		t.Errorf("absent grade must render N/A: %q", got)
	}
	if !strings.Contains(got, "Details URL: N/A") {
		t.Errorf("absent details URL must render N/A: %q", got)
	}
}

func TestPrettyEmitsANSISequences(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got, err := Pretty(&scanner.ScanPayload{Host: "example.com", Grade: "A", Score: 100}, 100)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI sequences in pretty output: %q", got)
	}
}

func TestPrettyScoreColorTracksThreshold(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	passing, err := Pretty(&scanner.ScanPayload{Host: "example.com", Score: 90}, 80)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	failing, err := Pretty(&scanner.ScanPayload{Host: "example.com", Score: 70}, 80)
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}

	if !strings.Contains(passing, colorSuccess("90")) {
		t.Errorf("passing score should be green: %q", passing)
	}
	if !strings.Contains(failing, colorError("70")) {
		t.Errorf("failing score should be red: %q", failing)
	}
}

func TestGradeColorTable(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	cases := []struct {
		grade string
		want  sprintFunc
	}{
		{"A+", colorSuccess},
		{"A", colorSuccess},
		{"A-", colorSuccess},
		{"B+", colorWarn},
		{"B-", colorWarn},
		{"C", colorError},
		{"D-", colorError},
		{"F", colorError},
		{"", colorNeutral},
		{"Z", colorNeutral},
		{"a", colorNeutral},
	}
	for _, tc := range cases {
		if got := gradeColor(tc.grade)("x"); got != tc.want("x") {
			t.Errorf("gradeColor(%q) produced %q, want %q", tc.grade, got, tc.want("x"))
		}
	}
}
