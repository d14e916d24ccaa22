package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibeheim/guidlint/cmd/check"
	"github.com/vibeheim/guidlint/cmd/perf"
	"github.com/vibeheim/guidlint/cmd/publish"
	"github.com/vibeheim/guidlint/cmd/version"
	"github.com/vibeheim/guidlint/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "guidlint [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Guidlint validates FGuid initialization patterns and gates CI on the results.",
		Long: `Guidlint is a static-analysis tool for Unreal Engine projects. It scans C++
	headers for UPROPERTY FGuid members without an explicit in-class initializer,
	runs the performance regression suite, and publishes the resulting reports.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(perf.PerfCmd)
	rootCmd.AddCommand(publish.PublishCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps errors to the process exit
// code. Validation and performance failures are data outcomes already
// reported through command output, so they are not re-printed here.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config file %q: %v\n", cfgFile, err)
		os.Exit(1)
	}

	check.Init(AppConfig)
	perf.Init(AppConfig)
	publish.Init(AppConfig)
}
