package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/safepi/internal/scanner"
	consts "github.com/khanhnv2901/safepi/internal/shared/constants"
	"github.com/khanhnv2901/safepi/internal/validate"
)

const telemetryFilename = "safepi_telemetry.jsonl"

type telemetryRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Domains     int       `json:"domains"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	Errored     int       `json:"errored"`
	SuccessRate float64   `json:"success_rate"`
	DurationMS  int64     `json:"duration_ms"`
}

// recordTelemetry appends one JSON line of run statistics to the telemetry
// file in the output directory. The path goes through the same traversal and
// containment gates as a report artifact.
func recordTelemetry(cfg *ScanConfig, results []scanner.Result, duration time.Duration) error {
	if validate.IsPathTraversal(cfg.OutputPath) {
		return fmt.Errorf("telemetry directory %q: %w", cfg.OutputPath, validate.ErrPathEscape)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	path, err := validate.ResolveWithin(wd, cfg.OutputPath, telemetryFilename)
	if err != nil {
		return err
	}

	passed, failed, errored := scanner.CountByStatus(results)
	total := len(results)
	successRate := 0.0
	if total > 0 {
		successRate = float64(passed) / float64(total) * 100
	}

	record := telemetryRecord{
		Timestamp:   time.Now().UTC(),
		Domains:     total,
		Passed:      passed,
		Failed:      failed,
		Errored:     errored,
		SuccessRate: successRate,
		DurationMS:  duration.Milliseconds(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), consts.DefaultDirPerm); err != nil {
		return fmt.Errorf("create telemetry directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open telemetry file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write telemetry: %w", err)
	}
	return nil
}
