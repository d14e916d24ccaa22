package perf

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	perfrunner "github.com/vibeheim/guidlint/internal/perf"
	"github.com/vibeheim/guidlint/pkg/shared"
	"github.com/vibeheim/guidlint/pkg/shared/config"
	sharederrors "github.com/vibeheim/guidlint/pkg/shared/errors"
	"github.com/vibeheim/guidlint/pkg/shared/logger"
)

// RunOptionsPerf holds the arguments for the perf command.
type RunOptionsPerf struct {
	ProjectPath string
	EnginePath  string
	OutputDir   string
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	perfOptions      RunOptionsPerf
	examplePerfUsage = `  # Running the performance regression suite
  guidlint perf --project-path C:/dev/Vibeheim --engine-path C:/UnrealEngine

  # Running with a custom results directory
  guidlint perf --project-path C:/dev/Vibeheim --engine-path C:/UnrealEngine --output-dir C:/ci/perf-results`
)

// PerfCmd represents the perf command.
var PerfCmd = &cobra.Command{
	Use:                   "perf --project-path PATH --engine-path PATH [--output-dir PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               examplePerfUsage,
	Short:                 "Runs the performance regression suite and validates results against targets",
	RunE:                  runPerfCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runPerfCommand executes the perf command.
func runPerfCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-perf")

	if err := validatePerfArgs(&perfOptions, args); err != nil {
		logger.Error("invalid perf arguments", "error", err)
		return err
	}

	targets := perfrunner.Targets{
		AverageGenerationTimeMs: AppConfig.Perf.AverageGenerationTimeMs,
		P95GenerationTimeMs:     AppConfig.Perf.P95GenerationTimeMs,
		LOD0MemoryLimitMB:       AppConfig.Perf.LOD0MemoryLimitMB,
		MaxTrianglesPerChunk:    AppConfig.Perf.MaxTrianglesPerChunk,
	}
	timeout := time.Duration(AppConfig.Perf.TestTimeoutMinutes) * time.Minute

	runner := perfrunner.NewRunner(perfOptions.ProjectPath, perfOptions.EnginePath, perfOptions.OutputDir, timeout, logger)

	logger.Info("starting performance regression test suite")
	testsPassed, testResults := runner.RunSuite(context.Background())

	doc, err := perfrunner.ParseMetrics(runner.MetricsPath())
	if err != nil {
		logger.Warn("failed to parse exported performance data", "error", err)
		doc = nil
	}

	validationPassed, failures := perfrunner.ValidateTargets(doc, targets)

	report := perfrunner.NewReport(testResults, doc, targets, validationPassed, failures)
	reportPath, err := report.Write(runner.ResultsDir())
	if err != nil {
		logger.Error("failed to write CI report", "error", err)
		return err
	}
	fmt.Printf("CI report written to: %s\n", reportPath)

	printSuiteSummary(testsPassed, validationPassed, failures)

	if !testsPassed || !validationPassed {
		if !testsPassed {
			failures = append([]string{"one or more automation tests failed"}, failures...)
		}
		return sharederrors.NewPerfFailedError(failures)
	}

	logger.Info("perf command completed successfully")
	return nil
}

// printSuiteSummary prints the human-readable pass/fail summary.
func printSuiteSummary(testsPassed, validationPassed bool, failures []string) {
	fmt.Println()
	fmt.Println("=== PERFORMANCE TEST SUITE RESULTS ===")
	fmt.Printf("Automation Tests: %s\n", passFail(testsPassed))
	fmt.Printf("Performance Validation: %s\n", passFail(validationPassed))

	if len(failures) > 0 {
		fmt.Println("Validation Failures:")
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
	}

	fmt.Printf("Overall Result: %s\n", passFail(testsPassed && validationPassed))
	fmt.Println("=====================================")
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// Initialize flags for the perf command.
func init() {
	PerfCmd.Flags().StringVar(&perfOptions.ProjectPath, "project-path", "", "Path to the Unreal project.")
	PerfCmd.Flags().StringVar(&perfOptions.EnginePath, "engine-path", "", "Path to the Unreal Engine installation.")
	PerfCmd.Flags().StringVar(&perfOptions.OutputDir, "output-dir", "", "Output directory for results. Defaults to <project>/Saved/PerformanceTests.")
	PerfCmd.Flags().BoolP("help", "h", false, "Show help for the perf command.")
}
