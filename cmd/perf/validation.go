package perf

import (
	"fmt"

	"github.com/vibeheim/guidlint/pkg/shared/files"
)

// validatePerfArgs validates the arguments provided to the perf command.
func validatePerfArgs(options *RunOptionsPerf, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("the perf command takes no positional arguments")
	}

	if options.ProjectPath == "" {
		return fmt.Errorf("the 'project-path' flag must be specified")
	}
	if err := files.ValidateDirectory(options.ProjectPath); err != nil {
		return fmt.Errorf("the project path is not usable: %w", err)
	}

	if options.EnginePath == "" {
		return fmt.Errorf("the 'engine-path' flag must be specified")
	}
	if err := files.ValidateDirectory(options.EnginePath); err != nil {
		return fmt.Errorf("the engine path is not usable: %w", err)
	}

	return nil
}
