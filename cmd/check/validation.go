package check

import (
	"fmt"

	"github.com/vibeheim/guidlint/pkg/shared/files"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(options *RunOptionsCheck, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a target directory must be specified")
	}
	if len(args) > 1 {
		return fmt.Errorf("only one target directory may be specified, got %d", len(args))
	}

	if err := files.ValidateDirectory(args[0]); err != nil {
		return fmt.Errorf("the target directory is not usable: %w", err)
	}

	if options.Format != FormatText && options.Format != FormatSarif {
		return fmt.Errorf("unsupported report format %q, expected %q or %q", options.Format, FormatText, FormatSarif)
	}

	return nil
}
