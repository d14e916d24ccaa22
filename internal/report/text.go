package report

import (
	"fmt"
	"strings"

	"github.com/vibeheim/guidlint/internal/validator"
)

// Aggregate holds the totals across all file outcomes.
type Aggregate struct {
	Files      int
	Found      int
	Valid      int
	Invalid    int
	Suppressed int
}

// AllValid reports whether the run found no invalid properties.
func (a Aggregate) AllValid() bool {
	return a.Invalid == 0
}

// Totals sums the per-file outcome counts.
func Totals(outcomes []validator.FileOutcome) Aggregate {
	agg := Aggregate{Files: len(outcomes)}
	for _, outcome := range outcomes {
		agg.Found += len(outcome.Found)
		agg.Valid += len(outcome.Valid)
		agg.Invalid += len(outcome.Invalid)
		agg.Suppressed += len(outcome.Suppressed)
	}
	return agg
}

// Build renders the validation report. The output is deterministic for
// identical inputs: it contains no timestamps, and outcomes arrive in
// the walker's sorted order. The bool is true iff no invalid
// properties were found.
func Build(outcomes []validator.FileOutcome) (string, bool) {
	agg := Totals(outcomes)

	var lines []string
	lines = append(lines, strings.Repeat("=", 80))
	lines = append(lines, "UPROPERTY FGuid Initialization Validation Report")
	lines = append(lines, strings.Repeat("=", 80))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total files scanned: %d", agg.Files))
	lines = append(lines, fmt.Sprintf("Total UPROPERTY FGuid properties found: %d", agg.Found))
	lines = append(lines, fmt.Sprintf("Valid properties: %d", agg.Valid))
	lines = append(lines, fmt.Sprintf("Invalid properties: %d", agg.Invalid))
	lines = append(lines, fmt.Sprintf("Suppressed properties: %d", agg.Suppressed))
	lines = append(lines, "")

	if agg.Invalid > 0 {
		lines = append(lines, "❌ VALIDATION FAILED")
		lines = append(lines, "")
		lines = append(lines, "Invalid Properties (require fixes):")
		lines = append(lines, strings.Repeat("-", 40))

		for _, outcome := range outcomes {
			for _, prop := range outcome.Invalid {
				lines = append(lines, fmt.Sprintf("File: %s:%d", prop.FilePath, prop.LineNumber))
				lines = append(lines, fmt.Sprintf("Struct: %s", prop.StructName))
				lines = append(lines, fmt.Sprintf("Property: %s", prop.PropertyName))
				lines = append(lines, fmt.Sprintf("Declaration: %s", prop.DeclarationLine))
				if prop.HasInitializer {
					lines = append(lines, fmt.Sprintf("Current initializer: %s", prop.Initializer))
					lines = append(lines, "Issue: Invalid initializer pattern")
				} else {
					lines = append(lines, "Issue: Missing in-class initializer")
				}
				lines = append(lines, "Expected: FGuid() or FGuid::NewGuid()")
				lines = append(lines, "")
			}
		}
	} else {
		lines = append(lines, "✅ VALIDATION PASSED")
		lines = append(lines, "")
	}

	if agg.Suppressed > 0 {
		lines = append(lines, "Suppressed Properties:")
		lines = append(lines, strings.Repeat("-", 20))
		for _, outcome := range outcomes {
			for _, prop := range outcome.Suppressed {
				lines = append(lines, fmt.Sprintf("%s:%d - %s::%s",
					prop.FilePath, prop.LineNumber, prop.StructName, prop.PropertyName))
			}
		}
		lines = append(lines, "")
	}

	if agg.Valid > 0 {
		lines = append(lines, "Valid Properties:")
		lines = append(lines, strings.Repeat("-", 15))
		for _, outcome := range outcomes {
			for _, prop := range outcome.Valid {
				lines = append(lines, fmt.Sprintf("✅ %s:%d - %s::%s = %s",
					prop.FilePath, prop.LineNumber, prop.StructName, prop.PropertyName, prop.Initializer))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), agg.AllValid()
}
