package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/safepi/internal/report"
	"github.com/khanhnv2901/safepi/internal/scanner"
	consts "github.com/khanhnv2901/safepi/internal/shared/constants"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "safepi",
	Short: "Scan domains for security-header compliance and gate on the score",
	Long: `safepi submits each domain to the HTTP Observatory scan API, renders the
returned grade and score as text, colored terminal output, or a standalone
HTML report, and decides the exit code from the aggregate outcome so CI
pipelines can gate deployments on it.

Domains are scanned strictly one at a time with a fixed delay in between;
the spacing is deliberate and not configurable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".safepi")
			viper.SetConfigType("yaml")
		}
		// a missing config file is fine; flags carry the defaults
		_ = viper.ReadInConfig()

		// init logger
		if logger == nil {
			l, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			logger = l.Sugar()
		}
		return nil
	},
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)

	cfg, err := buildScanConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("scan run starting",
		"domains", len(cfg.Domains),
		"passing_score", cfg.PassingScore,
		"format", string(cfg.ReportFormat),
	)

	start := time.Now()
	results, runErr := newRunner(cfg).Run(ctx, cfg.Domains)
	duration := time.Since(start)

	if cfg.Telemetry && len(results) > 0 {
		if terr := recordTelemetry(cfg, results, duration); terr != nil {
			fmt.Fprintf(os.Stderr, "%s telemetry not recorded: %v\n", colorWarn("Warning:"), terr)
		}
	}
	if runErr != nil {
		return runErr
	}

	passed, failed, errored := scanner.CountByStatus(results)
	logger.Infow("scan run finished",
		"passed", passed, "failed", failed, "errored", errored,
		"duration", duration,
	)

	if scanner.ExitCode(results, cfg.FailOnIssue) != 0 {
		return errScanIssues
	}
	return nil
}

func newRunner(cfg *ScanConfig) *scanner.Runner {
	r := &scanner.Runner{
		Client:       scanner.NewClient(scanner.Options{Hidden: cfg.Hidden, Rescan: cfg.Rescan}),
		PassingScore: cfg.PassingScore,
		Render:       cfg.ReportFormat.Renderer(),
		PrintSummary: report.Summary,
		Limiter:      scanner.NewScanLimiter(consts.ScanInterval),
		Log:          logger,
	}
	if cfg.ReportFormat == report.FormatHTML {
		w := &report.Writer{Dir: cfg.OutputPath, Checksum: cfg.Checksum}
		r.Persist = w.Write
	}
	return r
}

// Execute runs the root command and owns the process exit code. errScanIssues
// already had its per-domain detail printed during the run, so it exits
// silently; everything else gets one line on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errScanIssues) {
			fmt.Fprintf(os.Stderr, "%s %v\n", colorError("Error:"), err)
		}
		os.Exit(1)
	}
}

func init() {
	registerScanFlags(rootCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.safepi.yaml)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (run \"%s --help\" for usage)", err, cmd.CommandPath())
	})

	rootCmd.AddCommand(versionCmd)
}
