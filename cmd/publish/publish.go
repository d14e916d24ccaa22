package publish

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vibeheim/guidlint/internal/publish"
	"github.com/vibeheim/guidlint/pkg/shared"
	"github.com/vibeheim/guidlint/pkg/shared/config"
	"github.com/vibeheim/guidlint/pkg/shared/logger"
)

// RunOptionsPublish holds the arguments for the publish command.
type RunOptionsPublish struct {
	InputFile string
	S3Bucket  string
	S3Key     string
	S3Region  string
	URL       string
	Token     string
}

// Global variables for configuration and command arguments
var (
	AppConfig           *config.Config
	publishOptions      RunOptionsPublish
	examplePublishUsage = `  # Uploading a CI report to S3
  guidlint publish --input Saved/PerformanceTests/ci_performance_report.json --s3-bucket vibeheim-ci --s3-region eu-west-2

  # Posting a CI report to a results endpoint
  guidlint publish --input Saved/PerformanceTests/ci_performance_report.json --url https://results.example.com/api/reports

  # Both destinations at once
  guidlint publish --input report.json --s3-bucket vibeheim-ci --url https://results.example.com/api/reports`
)

// PublishCmd represents the publish command.
var PublishCmd = &cobra.Command{
	Use:                   "publish --input/-i PATH {--s3-bucket BUCKET [--s3-key KEY] [--s3-region REGION] | --url URL [--token TOKEN]}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               examplePublishUsage,
	Short:                 "Publishes a report artifact to S3 and/or an HTTP results endpoint",
	RunE:                  runPublishCommand,
}

// Init initializes the global configuration variable and destination defaults.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runPublishCommand executes the publish command.
func runPublishCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-publish")

	applyConfigDefaults(&publishOptions, AppConfig)
	if err := validatePublishArgs(&publishOptions, args); err != nil {
		logger.Error("invalid publish arguments", "error", err)
		return err
	}

	if publishOptions.S3Bucket != "" {
		dest := publish.NewS3Destination(publishOptions.S3Bucket, publishOptions.S3Region, logger)
		if _, err := dest.Upload(publishOptions.InputFile, publishOptions.S3Key); err != nil {
			logger.Error("S3 upload failed", "error", err)
			return err
		}
	}

	if publishOptions.URL != "" {
		dest := publish.NewHTTPDestination(publishOptions.URL, publishOptions.Token, logger)
		if err := dest.Post(publishOptions.InputFile); err != nil {
			logger.Error("HTTP publish failed", "error", err)
			return err
		}
	}

	logger.Info("publish command completed successfully")
	return nil
}

// applyConfigDefaults fills unset destination options from the config file
// and environment.
func applyConfigDefaults(options *RunOptionsPublish, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if options.URL == "" {
		options.URL = cfg.Publish.URL
	}
	if options.S3Bucket == "" {
		options.S3Bucket = cfg.Publish.S3Bucket
	}
	if options.S3Region == "" {
		options.S3Region = cfg.Publish.S3Region
	}
	if options.Token == "" {
		options.Token = os.Getenv("GUIDLINT_RESULTS_TOKEN")
	}
}

// Initialize flags for the publish command.
func init() {
	PublishCmd.Flags().StringVarP(&publishOptions.InputFile, "input", "i", "", "Path to the report artifact to publish.")
	PublishCmd.Flags().StringVar(&publishOptions.S3Bucket, "s3-bucket", "", "S3 bucket to upload the artifact to.")
	PublishCmd.Flags().StringVar(&publishOptions.S3Key, "s3-key", "", "S3 object key. Defaults to the artifact's file name.")
	PublishCmd.Flags().StringVar(&publishOptions.S3Region, "s3-region", "", "AWS region of the S3 bucket.")
	PublishCmd.Flags().StringVar(&publishOptions.URL, "url", "", "HTTP results endpoint to post the artifact to.")
	PublishCmd.Flags().StringVar(&publishOptions.Token, "token", "", "Authorization token for the results endpoint. Defaults to GUIDLINT_RESULTS_TOKEN.")
	PublishCmd.Flags().BoolP("help", "h", false, "Show help for the publish command.")
}
