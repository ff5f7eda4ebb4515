package report

import "github.com/fatih/color"

type sprintFunc func(a ...interface{}) string

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
	colorNeutral = color.New(color.FgWhite).SprintFunc()
)

// gradeColors is the fixed grade-to-color table: A grades green, B grades
// yellow, C and below red. The API has no E grade.
var gradeColors = map[string]sprintFunc{
	"A+": colorSuccess, "A": colorSuccess, "A-": colorSuccess,
	"B+": colorWarn, "B": colorWarn, "B-": colorWarn,
	"C+": colorError, "C": colorError, "C-": colorError,
	"D+": colorError, "D": colorError, "D-": colorError,
	"F": colorError,
}

// gradeColor looks a grade up in the fixed table. Anything outside it, an
// absent grade included, renders through the neutral color so a bogus grade
// never borrows the pass color.
func gradeColor(grade string) sprintFunc {
	if fn, ok := gradeColors[grade]; ok {
		return fn
	}
	return colorNeutral
}
