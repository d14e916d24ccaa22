package publish

import (
	"fmt"

	"github.com/vibeheim/guidlint/pkg/shared/files"
)

// validatePublishArgs validates the arguments provided to the publish command.
func validatePublishArgs(options *RunOptionsPublish, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("the publish command takes no positional arguments")
	}

	if options.InputFile == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}
	if err := files.ValidatePath(options.InputFile); err != nil {
		return fmt.Errorf("the input file is not usable: %w", err)
	}

	if options.S3Bucket == "" && options.URL == "" {
		return fmt.Errorf("at least one destination must be specified: 's3-bucket' or 'url'")
	}

	if options.S3Bucket != "" && options.S3Region == "" {
		return fmt.Errorf("the 's3-region' flag must be specified when uploading to S3")
	}

	return nil
}
