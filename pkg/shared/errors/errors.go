package errors

import "fmt"

// ValidationFailedError is returned by the check command when invalid
// properties were found and --fail-on-invalid is set. It is a data
// outcome surfaced through the exit-code contract, not a scan failure.
type ValidationFailedError struct {
	Invalid int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid FGuid properties", e.Invalid)
}

// NewValidationFailedError creates a new ValidationFailedError instance.
func NewValidationFailedError(invalid int) error {
	return &ValidationFailedError{Invalid: invalid}
}

// PerfFailedError is returned by the perf command when automation tests
// failed or metrics exceeded their targets.
type PerfFailedError struct {
	Failures []string
}

// Error implements the error interface.
func (e *PerfFailedError) Error() string {
	if len(e.Failures) == 0 {
		return "performance test suite failed"
	}
	return fmt.Sprintf("performance test suite failed: %s", e.Failures[0])
}

// NewPerfFailedError creates a new PerfFailedError instance.
func NewPerfFailedError(failures []string) error {
	return &PerfFailedError{Failures: failures}
}
