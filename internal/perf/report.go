package perf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// reportFileName is the CI report written next to the test results.
const reportFileName = "ci_performance_report.json"

// Report is the CI performance report. Unlike the validation report it
// is a per-run artifact, so it carries a timestamp and a run id.
type Report struct {
	RunID              string                `json:"runId"`
	Timestamp          string                `json:"timestamp"`
	TestResults        map[string]TestResult `json:"testResults"`
	PerformanceTargets Targets               `json:"performanceTargets"`
	ValidationPassed   bool                  `json:"validationPassed"`
	ValidationFailures []string              `json:"validationFailures"`
	Summary            ReportSummary         `json:"summary"`
	PerformanceMetrics *Summary              `json:"performanceMetrics,omitempty"`
}

// ReportSummary counts the automation test outcomes.
type ReportSummary struct {
	TotalTests  int `json:"totalTests"`
	PassedTests int `json:"passedTests"`
	FailedTests int `json:"failedTests"`
}

// NewReport assembles the CI report from the suite outcomes.
func NewReport(testResults map[string]TestResult, doc *MetricsDocument, targets Targets, passed bool, failures []string) *Report {
	summary := ReportSummary{TotalTests: len(testResults)}
	for _, result := range testResults {
		if result.Passed {
			summary.PassedTests++
		} else {
			summary.FailedTests++
		}
	}
	if failures == nil {
		failures = []string{}
	}

	report := &Report{
		RunID:              uuid.New().String(),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
		TestResults:        testResults,
		PerformanceTargets: targets,
		ValidationPassed:   passed,
		ValidationFailures: failures,
		Summary:            summary,
	}

	if doc != nil && len(doc.ChunkMetrics) > 0 {
		metrics := Summarize(doc.ChunkMetrics)
		report.PerformanceMetrics = &metrics
	}

	return report
}

// Write stores the report as indented JSON in dir and returns its path.
func (r *Report) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create results directory %q: %w", dir, err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal CI report: %w", err)
	}

	path := filepath.Join(dir, reportFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CI report to %q: %w", path, err)
	}
	return path, nil
}
