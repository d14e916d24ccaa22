package report

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/vibeheim/guidlint/internal/validator"
)

const (
	ruleID         = "GUID001"
	informationURI = "https://github.com/vibeheim/guidlint"
)

// BuildSarif renders the invalid occurrences as a SARIF 2.1.0 report
// suitable for code-scanning upload. Valid and suppressed occurrences
// are not emitted. The bool mirrors Build's all-valid flag.
func BuildSarif(outcomes []validator.FileOutcome) (string, bool, error) {
	agg := Totals(outcomes)

	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", false, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("guidlint", informationURI)
	rule := run.AddRule(ruleID).
		WithDescription("UPROPERTY FGuid members must use an explicit in-class initializer").
		WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})

	for _, outcome := range outcomes {
		for _, prop := range outcome.Invalid {
			message := fmt.Sprintf("%s::%s is missing an in-class initializer; expected FGuid() or FGuid::NewGuid()",
				prop.StructName, prop.PropertyName)
			if prop.HasInitializer {
				message = fmt.Sprintf("%s::%s uses non-canonical initializer %q; expected FGuid() or FGuid::NewGuid()",
					prop.StructName, prop.PropertyName, prop.Initializer)
			}

			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(prop.FilePath)).
					WithRegion(sarif.NewRegion().WithStartLine(prop.LineNumber)),
			)

			result := sarif.NewRuleResult(rule.ID).
				WithMessage(sarif.NewTextMessage(message)).
				WithLevel("error").
				WithLocations([]*sarif.Location{location})
			run.AddResult(result)
		}
	}
	reportSarif.AddRun(run)

	var buf bytes.Buffer
	if err := reportSarif.PrettyWrite(&buf); err != nil {
		return "", false, fmt.Errorf("failed to render SARIF report: %w", err)
	}
	return buf.String(), agg.AllValid(), nil
}
