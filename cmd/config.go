package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khanhnv2901/safepi/internal/report"
	"github.com/khanhnv2901/safepi/internal/validate"
)

const (
	defaultPassingScore = 100
	defaultReportFormat = "pretty"
	defaultOutputPath   = "./"
)

// ScanConfig is the run configuration the orchestrator consumes. It is built
// exactly once per run by buildScanConfig and read-only afterwards.
type ScanConfig struct {
	Domains      []string
	PassingScore int
	ReportFormat report.Format
	OutputPath   string
	FailOnIssue  bool
	Hidden       bool
	Rescan       bool
	Telemetry    bool
	Checksum     bool
}

func registerScanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("domain", "d", "", "comma-separated list of domains to scan (required)")
	flags.IntP("score", "s", defaultPassingScore, "minimum passing score")
	flags.StringP("report", "r", defaultReportFormat, "report format: text|pretty|html")
	flags.StringP("output", "o", defaultOutputPath, "output directory for HTML reports")
	flags.BoolP("fail", "f", false, "exit non-zero when any domain scores below the threshold")
	flags.Bool("hidden", true, "keep the scan off the API's public results list")
	flags.Bool("rescan", true, "bypass the API's cached result")
	flags.Bool("telemetry", false, "append run statistics to safepi_telemetry.jsonl in the output directory")
	flags.Bool("checksum", false, "write a .sha256 companion next to each HTML report")

	// bare --fail means --fail=true
	flags.Lookup("fail").NoOptDefVal = "true"
}

// buildScanConfig turns the parsed flag set into a validated ScanConfig. It
// never returns a partial configuration: the first bad input fails the run
// before any scan starts, and in html mode that includes the traversal check
// on the output directory.
func buildScanConfig(cmd *cobra.Command) (*ScanConfig, error) {
	flags := cmd.Flags()

	rawDomains, _ := flags.GetString("domain")
	domains := splitDomains(rawDomains)
	if len(domains) == 0 {
		return nil, &ArgumentError{Flag: "--domain", Reason: "is required"}
	}

	rawFormat, _ := flags.GetString("report")
	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		return nil, &ArgumentError{Flag: "--report", Reason: err.Error()}
	}

	outputPath, _ := flags.GetString("output")
	if format == report.FormatHTML && validate.IsPathTraversal(outputPath) {
		return nil, &OutputPathError{Path: outputPath}
	}

	passingScore, _ := flags.GetInt("score")
	failOnIssue, _ := flags.GetBool("fail")
	hidden, _ := flags.GetBool("hidden")
	rescan, _ := flags.GetBool("rescan")
	telemetry, _ := flags.GetBool("telemetry")
	checksum, _ := flags.GetBool("checksum")

	return &ScanConfig{
		Domains:      domains,
		PassingScore: passingScore,
		ReportFormat: format,
		OutputPath:   outputPath,
		FailOnIssue:  failOnIssue,
		Hidden:       hidden,
		Rescan:       rescan,
		Telemetry:    telemetry,
		Checksum:     checksum,
	}, nil
}

// splitDomains splits the comma-separated --domain value, trimming
// whitespace and dropping empty entries while preserving order.
func splitDomains(raw string) []string {
	parts := strings.Split(raw, ",")
	domains := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			domains = append(domains, trimmed)
		}
	}
	return domains
}

// configDefaultKeys maps config-file keys to the flags they may default.
var configDefaultKeys = map[string]string{
	"defaults.score":     "score",
	"defaults.report":    "report",
	"defaults.output":    "output",
	"defaults.hidden":    "hidden",
	"defaults.rescan":    "rescan",
	"defaults.telemetry": "telemetry",
	"defaults.checksum":  "checksum",
}

// applyConfigDefaults merges config-file defaults into flags the user did not
// set on the command line. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	for key, name := range configDefaultKeys {
		if viper.IsSet(key) {
			setFlagIfUnset(flags, name, viper.GetString(key))
		}
	}
}

func setFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
