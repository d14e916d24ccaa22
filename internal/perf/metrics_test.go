package perf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultTargets() Targets {
	return Targets{
		AverageGenerationTimeMs: 5.0,
		P95GenerationTimeMs:     9.0,
		LOD0MemoryLimitMB:       64,
		MaxTrianglesPerChunk:    8000,
	}
}

func TestSummarize(t *testing.T) {
	metrics := make([]ChunkMetric, 0, 20)
	for i := 1; i <= 20; i++ {
		metrics = append(metrics, ChunkMetric{
			GenerationTimeMs: float64(i),
			MemoryUsageBytes: 1024 * 1024, // 1MB each
			TriangleCount:    100 * i,
			LODLevel:         i % 2, // half the chunks are LOD0
		})
	}

	summary := Summarize(metrics)

	assert.InDelta(t, 10.5, summary.AverageGenerationTimeMs, 1e-9)
	// p95 index: int(20*0.95) = 19, the last sorted value.
	assert.InDelta(t, 20.0, summary.P95GenerationTimeMs, 1e-9)
	assert.InDelta(t, 20.0, summary.TotalMemoryUsageMB, 1e-9)
	assert.InDelta(t, 10.0, summary.LOD0MemoryUsageMB, 1e-9)
	assert.InDelta(t, 1050.0, summary.AverageTriangleCount, 1e-9)
	assert.Equal(t, 2000, summary.MaxTriangleCount)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestValidateTargetsPass(t *testing.T) {
	doc := &MetricsDocument{ChunkMetrics: []ChunkMetric{
		{GenerationTimeMs: 3.0, MemoryUsageBytes: 16 * 1024 * 1024, TriangleCount: 5000, LODLevel: 0},
		{GenerationTimeMs: 4.0, MemoryUsageBytes: 8 * 1024 * 1024, TriangleCount: 6000, LODLevel: 1},
	}}

	passed, failures := ValidateTargets(doc, defaultTargets())
	assert.True(t, passed)
	assert.Empty(t, failures)
}

func TestValidateTargetsFailures(t *testing.T) {
	doc := &MetricsDocument{ChunkMetrics: []ChunkMetric{
		{GenerationTimeMs: 12.0, MemoryUsageBytes: 80 * 1024 * 1024, TriangleCount: 9000, LODLevel: 0},
	}}

	passed, failures := ValidateTargets(doc, defaultTargets())
	assert.False(t, passed)
	assert.Len(t, failures, 4)
	assert.Contains(t, failures[0], "Average generation time 12.00ms exceeds target 5ms")
	assert.Contains(t, failures[1], "P95 generation time 12.00ms exceeds target 9ms")
	assert.Contains(t, failures[2], "LOD0 memory usage 80.0MB exceeds target 64MB")
	assert.Contains(t, failures[3], "Max triangle count 9000 exceeds target 8000")
}

func TestValidateTargetsNoData(t *testing.T) {
	passed, failures := ValidateTargets(nil, defaultTargets())
	assert.False(t, passed)
	assert.Equal(t, []string{"No performance data available"}, failures)

	passed, failures = ValidateTargets(&MetricsDocument{}, defaultTargets())
	assert.False(t, passed)
	assert.Equal(t, []string{"No chunk metrics available"}, failures)
}

func TestParseMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ComprehensiveRegressionResults.json")
	content := `{"chunkMetrics": [
		{"generationTimeMs": 4.2, "memoryUsageBytes": 1048576, "triangleCount": 7500, "lodLevel": 0}
	]}`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := ParseMetrics(path)
	assert.NoError(t, err)
	assert.Len(t, doc.ChunkMetrics, 1)
	assert.InDelta(t, 4.2, doc.ChunkMetrics[0].GenerationTimeMs, 1e-9)
	assert.Equal(t, int64(1048576), doc.ChunkMetrics[0].MemoryUsageBytes)
	assert.Equal(t, 7500, doc.ChunkMetrics[0].TriangleCount)
	assert.Equal(t, 0, doc.ChunkMetrics[0].LODLevel)
}

func TestParseMetricsMissingFile(t *testing.T) {
	_, err := ParseMetrics(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
