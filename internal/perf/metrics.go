package perf

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ChunkMetric is one per-chunk record from the exported automation
// test data.
type ChunkMetric struct {
	GenerationTimeMs float64 `json:"generationTimeMs"`
	MemoryUsageBytes int64   `json:"memoryUsageBytes"`
	TriangleCount    int     `json:"triangleCount"`
	LODLevel         int     `json:"lodLevel"`
}

// MetricsDocument is the exported performance data file written by the
// ComprehensiveRegression automation test.
type MetricsDocument struct {
	ChunkMetrics []ChunkMetric `json:"chunkMetrics"`
}

// Targets are the performance budgets. They must match the C++
// constants used by the automation tests.
type Targets struct {
	AverageGenerationTimeMs float64 `json:"averageGenerationTimeMs"`
	P95GenerationTimeMs     float64 `json:"p95GenerationTimeMs"`
	LOD0MemoryLimitMB       float64 `json:"lod0MemoryLimitMB"`
	MaxTrianglesPerChunk    int     `json:"maxTrianglesPerChunk"`
}

// Summary holds the statistics computed from the chunk metrics.
type Summary struct {
	AverageGenerationTimeMs float64 `json:"averageGenerationTimeMs"`
	P95GenerationTimeMs     float64 `json:"p95GenerationTimeMs"`
	TotalMemoryUsageMB      float64 `json:"totalMemoryUsageMB"`
	LOD0MemoryUsageMB       float64 `json:"lod0MemoryUsageMB"`
	AverageTriangleCount    float64 `json:"averageTriangleCount"`
	MaxTriangleCount        int     `json:"maxTriangleCount"`
}

// ParseMetrics reads and decodes an exported performance data file.
func ParseMetrics(path string) (*MetricsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read performance data %q: %w", path, err)
	}

	var doc MetricsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse performance data %q: %w", path, err)
	}
	return &doc, nil
}

// Summarize computes the aggregate statistics over the chunk metrics.
// P95 uses the sorted value at index int(n*0.95), clamped to the last
// element.
func Summarize(metrics []ChunkMetric) Summary {
	if len(metrics) == 0 {
		return Summary{}
	}

	times := make([]float64, 0, len(metrics))
	var totalTime, totalMemory, lod0Memory float64
	var totalTriangles, maxTriangles int

	for _, m := range metrics {
		times = append(times, m.GenerationTimeMs)
		totalTime += m.GenerationTimeMs
		totalMemory += float64(m.MemoryUsageBytes)
		if m.LODLevel == 0 {
			lod0Memory += float64(m.MemoryUsageBytes)
		}
		totalTriangles += m.TriangleCount
		if m.TriangleCount > maxTriangles {
			maxTriangles = m.TriangleCount
		}
	}

	sort.Float64s(times)
	p95Index := int(float64(len(times)) * 0.95)
	if p95Index >= len(times) {
		p95Index = len(times) - 1
	}

	const bytesPerMB = 1024 * 1024
	return Summary{
		AverageGenerationTimeMs: totalTime / float64(len(metrics)),
		P95GenerationTimeMs:     times[p95Index],
		TotalMemoryUsageMB:      totalMemory / bytesPerMB,
		LOD0MemoryUsageMB:       lod0Memory / bytesPerMB,
		AverageTriangleCount:    float64(totalTriangles) / float64(len(metrics)),
		MaxTriangleCount:        maxTriangles,
	}
}

// ValidateTargets compares chunk metrics against the targets and
// returns the list of threshold violations.
func ValidateTargets(doc *MetricsDocument, targets Targets) (bool, []string) {
	if doc == nil {
		return false, []string{"No performance data available"}
	}
	if len(doc.ChunkMetrics) == 0 {
		return false, []string{"No chunk metrics available"}
	}

	summary := Summarize(doc.ChunkMetrics)
	var failures []string

	if summary.AverageGenerationTimeMs > targets.AverageGenerationTimeMs {
		failures = append(failures, fmt.Sprintf("Average generation time %.2fms exceeds target %vms",
			summary.AverageGenerationTimeMs, targets.AverageGenerationTimeMs))
	}
	if summary.P95GenerationTimeMs > targets.P95GenerationTimeMs {
		failures = append(failures, fmt.Sprintf("P95 generation time %.2fms exceeds target %vms",
			summary.P95GenerationTimeMs, targets.P95GenerationTimeMs))
	}
	if summary.LOD0MemoryUsageMB > targets.LOD0MemoryLimitMB {
		failures = append(failures, fmt.Sprintf("LOD0 memory usage %.1fMB exceeds target %vMB",
			summary.LOD0MemoryUsageMB, targets.LOD0MemoryLimitMB))
	}
	if summary.MaxTriangleCount > targets.MaxTrianglesPerChunk {
		failures = append(failures, fmt.Sprintf("Max triangle count %d exceeds target %d",
			summary.MaxTriangleCount, targets.MaxTrianglesPerChunk))
	}

	return len(failures) == 0, failures
}
