package perf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	testResults := map[string]TestResult{
		"WorldGen.Performance.ChunkGenerationRegression": {Passed: true},
		"WorldGen.Performance.LOD0MemoryValidation":      {Passed: false, Stderr: "boom"},
	}
	doc := &MetricsDocument{ChunkMetrics: []ChunkMetric{
		{GenerationTimeMs: 3.0, MemoryUsageBytes: 1024 * 1024, TriangleCount: 5000, LODLevel: 0},
	}}

	report := NewReport(testResults, doc, defaultTargets(), false, []string{"something exceeded"})

	assert.NotEmpty(t, report.RunID)
	assert.NotEmpty(t, report.Timestamp)
	assert.Equal(t, 2, report.Summary.TotalTests)
	assert.Equal(t, 1, report.Summary.PassedTests)
	assert.Equal(t, 1, report.Summary.FailedTests)
	assert.False(t, report.ValidationPassed)
	assert.Equal(t, []string{"something exceeded"}, report.ValidationFailures)
	if assert.NotNil(t, report.PerformanceMetrics) {
		assert.Equal(t, 5000, report.PerformanceMetrics.MaxTriangleCount)
	}
}

func TestNewReportWithoutMetrics(t *testing.T) {
	report := NewReport(map[string]TestResult{}, nil, defaultTargets(), false, nil)

	assert.Nil(t, report.PerformanceMetrics)
	assert.NotNil(t, report.ValidationFailures, "failures must marshal as [] rather than null")
}

func TestReportWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "PerformanceTests")
	report := NewReport(map[string]TestResult{"t": {Passed: true}}, nil, defaultTargets(), true, nil)

	path, err := report.Write(dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ci_performance_report.json"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var decoded Report
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	assert.True(t, decoded.ValidationPassed)
	assert.Equal(t, 1, decoded.Summary.TotalTests)
}
