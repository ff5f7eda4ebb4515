package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	consts "github.com/khanhnv2901/safepi/internal/shared/constants"
	"github.com/khanhnv2901/safepi/internal/validate"
)

const artifactTimeFormat = "20060102150405"

// Writer persists rendered HTML documents under Dir. Every write runs the
// traversal pattern check on Dir and then pins the final path under Base via
// validate.ResolveWithin, so an escape attempt surfaces as
// validate.ErrPathEscape before any directory or file is touched.
type Writer struct {
	Dir      string
	Base     string           // containment root; empty means the working directory
	Checksum bool             // drop a .sha256 companion next to each artifact
	Now      func() time.Time // nil means time.Now; fixed in tests
}

// Write stores one document and returns the artifact path. A path-escape
// error from here is run-fatal for the caller; any other failure is scoped
// to the domain being written.
func (w *Writer) Write(domain, document string) (string, error) {
	if validate.IsPathTraversal(w.Dir) {
		return "", fmt.Errorf("output directory %q: %w", w.Dir, validate.ErrPathEscape)
	}

	base := w.Base
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		base = wd
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	target, err := validate.ResolveWithin(base, w.Dir, artifactName(domain, now()))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), consts.DefaultDirPerm); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(document), consts.DefaultFilePerm); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	if w.Checksum {
		if err := writeChecksum(target, []byte(document)); err != nil {
			return "", err
		}
	}
	return target, nil
}

// artifactName derives safepi_<domain>_<timestamp>.html with every
// non-alphanumeric rune in the domain replaced by an underscore, keeping the
// filename shell- and filesystem-neutral.
func artifactName(domain string, at time.Time) string {
	var b strings.Builder
	for _, r := range domain {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("safepi_%s_%s.html", b.String(), at.Format(artifactTimeFormat))
}

// writeChecksum writes the coreutils-style companion: hex digest, two
// spaces, base filename. sha256sum -c accepts it as-is.
func writeChecksum(target string, document []byte) error {
	sum := sha256.Sum256(document)
	line := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), filepath.Base(target))
	if err := os.WriteFile(target+".sha256", []byte(line), consts.DefaultFilePerm); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}
	return nil
}
