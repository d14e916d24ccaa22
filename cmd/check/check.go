package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibeheim/guidlint/internal/report"
	"github.com/vibeheim/guidlint/internal/suppress"
	"github.com/vibeheim/guidlint/internal/validator"
	"github.com/vibeheim/guidlint/pkg/shared/config"
	sharederrors "github.com/vibeheim/guidlint/pkg/shared/errors"
	"github.com/vibeheim/guidlint/pkg/shared/files"
	"github.com/vibeheim/guidlint/pkg/shared/logger"
)

// Report formats supported by the check command.
const (
	FormatText  = "text"
	FormatSarif = "sarif"
)

// RunOptionsCheck holds the arguments for the check command.
type RunOptionsCheck struct {
	Recursive             bool
	SuppressionFile       string
	CreateSuppressionFile string
	Output                string
	Format                string
	FailOnInvalid         bool
}

// Global variables for configuration and command arguments
var (
	AppConfig         *config.Config
	checkOptions      RunOptionsCheck
	exampleCheckUsage = `  # Validating all headers under a source tree
  guidlint check Source/Vibeheim

  # Validating only the immediate children of a directory
  guidlint check --recursive=false Source/Vibeheim/WorldGen/Public

  # Validating with a suppression file and failing the build on findings
  guidlint check --suppression-file Config/guid_suppressions.json --fail-on-invalid Source/Vibeheim

  # Writing a SARIF report for code-scanning upload
  guidlint check --format sarif --output reports/guidlint.sarif Source/Vibeheim

  # Creating a starter suppression file (no scan is performed)
  guidlint check --create-suppression-file Config/guid_suppressions.json`
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check [--suppression-file/-s PATH] [--output/-o PATH] [--format/-f text|sarif] [--fail-on-invalid] TARGET_DIR",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Validates UPROPERTY FGuid initialization patterns in C++ headers",
	RunE:                  runCheckCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runCheckCommand executes the check command.
func runCheckCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-check")

	// Template creation is a standalone operation: write and exit
	// without scanning anything.
	if checkOptions.CreateSuppressionFile != "" {
		if err := suppress.WriteTemplate(checkOptions.CreateSuppressionFile); err != nil {
			logger.Error("failed to create suppression file", "error", err)
			return err
		}
		fmt.Printf("Created default suppression file: %s\n", checkOptions.CreateSuppressionFile)
		return nil
	}

	if err := validateCheckArgs(&checkOptions, args); err != nil {
		logger.Error("invalid check arguments", "error", err)
		return err
	}
	targetDir := args[0]

	store := suppress.Load(checkOptions.SuppressionFile, logger)
	logger.Debug("loaded suppressions", "count", store.Len())

	walker := validator.NewWalker(config.Extensions(AppConfig), checkOptions.Recursive, store, logger)
	outcomes, err := walker.Walk(targetDir)
	if err != nil {
		logger.Error("scan failed", "target", targetDir, "error", err)
		return err
	}

	var (
		reportText string
		allValid   bool
	)
	switch checkOptions.Format {
	case FormatSarif:
		reportText, allValid, err = report.BuildSarif(outcomes)
		if err != nil {
			logger.Error("failed to build SARIF report", "error", err)
			return err
		}
	default:
		reportText, allValid = report.Build(outcomes)
	}

	if checkOptions.Output != "" {
		if err := files.WriteReportFile(checkOptions.Output, reportText); err != nil {
			logger.Error("failed to write report", "path", checkOptions.Output, "error", err)
			return err
		}
		fmt.Printf("Report written to: %s\n", checkOptions.Output)
	} else {
		fmt.Println(reportText)
	}

	if checkOptions.FailOnInvalid && !allValid {
		return sharederrors.NewValidationFailedError(report.Totals(outcomes).Invalid)
	}
	return nil
}

// Initialize flags for the check command.
func init() {
	CheckCmd.Flags().BoolVarP(&checkOptions.Recursive, "recursive", "r", true, "Scan the target directory recursively.")
	CheckCmd.Flags().StringVarP(&checkOptions.SuppressionFile, "suppression-file", "s", "", "Path to a JSON suppression file with known exceptions.")
	CheckCmd.Flags().StringVar(&checkOptions.CreateSuppressionFile, "create-suppression-file", "", "Create a starter suppression file at the specified path and exit.")
	CheckCmd.Flags().StringVarP(&checkOptions.Output, "output", "o", "", "Path to the output file for the report. Defaults to stdout.")
	CheckCmd.Flags().StringVarP(&checkOptions.Format, "format", "f", FormatText, "Format for the report with results (text or sarif).")
	CheckCmd.Flags().BoolVar(&checkOptions.FailOnInvalid, "fail-on-invalid", false, "Exit with a non-zero code if invalid properties are found.")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
