package validate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscape indicates a resolved path would land outside its trusted root.
var ErrPathEscape = errors.New("path escapes base directory")

// encodedTraversalPatterns are matched case-insensitively against the decoded
// and cleaned path so that double-encoded traversal attempts are still caught.
var encodedTraversalPatterns = []string{"%2e%2e", "..%2f", "%2e%2e%2f"}

// IsPathTraversal reports whether path looks like a directory-escape attempt.
// Absolute paths count as dangerous: report artifacts are only ever written
// relative to the working directory. The remaining checks run on the
// URL-decoded, filesystem-cleaned form of the path.
func IsPathTraversal(path string) bool {
	if path == "" {
		return false
	}
	if filepath.IsAbs(path) {
		return true
	}

	decoded, err := url.PathUnescape(path)
	if err != nil {
		decoded = path
	}
	normalized := strings.ToLower(filepath.Clean(decoded))

	if strings.Contains(normalized, "..") ||
		strings.Contains(normalized, "/./") ||
		strings.Contains(normalized, `\`) {
		return true
	}
	for _, pattern := range encodedTraversalPatterns {
		if strings.Contains(normalized, pattern) {
			return true
		}
	}
	return false
}

// ResolveWithin joins elems under base and resolves the result to an absolute
// path, guaranteeing the outcome is base itself or one of its descendants.
// This is the canonical containment check run immediately before any artifact
// directory or file is created; IsPathTraversal is the cheap pattern gate that
// runs first.
func ResolveWithin(base string, elems ...string) (string, error) {
	if base == "" {
		return "", errors.New("base directory is required")
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolve base path: %w", err)
	}

	joined := filepath.Join(append([]string{absBase}, elems...)...)
	target, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("resolve target path: %w", err)
	}

	rel, err := filepath.Rel(absBase, target)
	if err != nil {
		return "", fmt.Errorf("relativize path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, target)
	}

	return target, nil
}
