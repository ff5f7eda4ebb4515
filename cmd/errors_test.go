package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Flag: "--domain", Reason: "is required"}
	if err.Error() != "--domain is required" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestOutputPathErrorMessage(t *testing.T) {
	err := &OutputPathError{Path: "../../etc/"}
	msg := err.Error()
	if !strings.Contains(msg, `"../../etc/"`) {
		t.Errorf("message should name the offending path: %q", msg)
	}
	if !strings.Contains(msg, "unsafe output path") {
		t.Errorf("message should say why it failed: %q", msg)
	}
}

func TestErrScanIssuesSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run finished: %w", errScanIssues)
	if !errors.Is(wrapped, errScanIssues) {
		t.Error("wrapped sentinel no longer matches errors.Is")
	}
}
