package cmd

import (
	"errors"
	"fmt"
)

// errScanIssues marks a run that completed but must exit non-zero: an errored
// domain, or a below-threshold score with --fail set. The per-domain detail
// was already printed during the run, so Execute exits without repeating it.
var errScanIssues = errors.New("scan completed with issues")

// ArgumentError reports a malformed command-line input. It is always fatal
// and the process never proceeds to scanning.
type ArgumentError struct {
	Flag   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Flag + " " + e.Reason
}

// OutputPathError reports an output directory that failed the traversal
// check. Raised before any directory is created or file touched.
type OutputPathError struct {
	Path string
}

func (e *OutputPathError) Error() string {
	return fmt.Sprintf("unsafe output path %q: reports may only be written under the working directory", e.Path)
}
