package perf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
)

// regressionTests are the automation tests that make up the
// performance-regression suite.
var regressionTests = []string{
	"WorldGen.Performance.ChunkGenerationRegression",
	"WorldGen.Performance.LOD0MemoryValidation",
	"WorldGen.Performance.TriangleCountValidation",
	"WorldGen.Performance.StreamingPerformance",
	"WorldGen.Performance.ComprehensiveRegression",
}

// metricsFileName is written by the ComprehensiveRegression test into
// the results directory.
const metricsFileName = "ComprehensiveRegressionResults.json"

// TestResult is the outcome of one automation test invocation.
type TestResult struct {
	Passed bool   `json:"passed"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Runner drives the Unreal editor in automation mode and collects the
// exported performance data.
type Runner struct {
	projectPath string
	enginePath  string
	resultsDir  string
	timeout     time.Duration
	logger      hclog.Logger
}

// NewRunner creates a Runner. resultsDir defaults to
// <project>/Saved/PerformanceTests when empty.
func NewRunner(projectPath, enginePath, resultsDir string, timeout time.Duration, logger hclog.Logger) *Runner {
	if resultsDir == "" {
		resultsDir = filepath.Join(projectPath, "Saved", "PerformanceTests")
	}
	return &Runner{
		projectPath: projectPath,
		enginePath:  enginePath,
		resultsDir:  resultsDir,
		timeout:     timeout,
		logger:      logger,
	}
}

// ResultsDir returns the directory test reports are written to.
func (r *Runner) ResultsDir() string {
	return r.resultsDir
}

// MetricsPath returns the expected location of the exported metrics
// document.
func (r *Runner) MetricsPath() string {
	return filepath.Join(r.resultsDir, metricsFileName)
}

// editorBinary locates the headless editor executable under the engine
// installation.
func (r *Runner) editorBinary() string {
	return filepath.Join(r.enginePath, "Engine", "Binaries", "Win64", "UnrealEditor-Cmd.exe")
}

// RunTest runs a single automation test with the runner's timeout. A
// timeout or a nonzero exit is a failed test, not an error: the suite
// keeps going and the failure lands in the report.
func (r *Runner) RunTest(ctx context.Context, testName string) TestResult {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	projectFile := filepath.Join(r.projectPath, "Vibeheim.uproject")
	cmd := exec.CommandContext(ctx, r.editorBinary(),
		projectFile,
		"-ExecCmds=Automation RunTests "+testName,
		"-TestExit=Automation Test Queue Empty",
		"-ReportOutputDir="+r.resultsDir,
		"-NullRHI",
		"-Unattended",
		"-NoSplash",
		"-NoSound",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running automation test", "test", testName)
	err := cmd.Run()

	result := TestResult{
		Passed: err == nil,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.Passed = false
		result.Stderr = fmt.Sprintf("test %s timed out after %s", testName, r.timeout)
		r.logger.Error("automation test timed out", "test", testName, "timeout", r.timeout)
	} else if err != nil {
		r.logger.Error("automation test failed", "test", testName, "error", err)
	} else {
		r.logger.Info("automation test passed", "test", testName)
	}

	return result
}

// RunSuite runs the whole regression suite sequentially and reports
// whether every test passed.
func (r *Runner) RunSuite(ctx context.Context) (bool, map[string]TestResult) {
	results := make(map[string]TestResult, len(regressionTests))
	allPassed := true

	for _, test := range regressionTests {
		result := r.RunTest(ctx, test)
		results[test] = result
		if !result.Passed {
			allPassed = false
		}
	}

	return allPassed, results
}
