package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is the application configuration, loaded from an optional YAML file.
type Config struct {
	Logger    Logger    `yaml:"logger"`
	Validator Validator `yaml:"validator"`
	Perf      Perf      `yaml:"perf"`
	Publish   Publish   `yaml:"publish"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Validator holds settings for the header validation engine.
type Validator struct {
	Extensions []string `yaml:"extensions"`
}

// Perf holds performance-regression targets. Zero values fall back to
// the built-in defaults, which must match the C++ constants.
type Perf struct {
	AverageGenerationTimeMs float64 `yaml:"average_generation_time_ms"`
	P95GenerationTimeMs     float64 `yaml:"p95_generation_time_ms"`
	LOD0MemoryLimitMB       float64 `yaml:"lod0_memory_limit_mb"`
	MaxTrianglesPerChunk    int     `yaml:"max_triangles_per_chunk"`
	TestTimeoutMinutes      int     `yaml:"test_timeout_minutes"`
}

// Publish holds default destinations for report artifacts.
type Publish struct {
	URL      string `yaml:"url"`
	S3Bucket string `yaml:"s3_bucket"`
	S3Region string `yaml:"s3_region"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration from configPath. A missing file is
// not an error: the tool must run bare in CI, so defaults are returned.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	config.Perf.applyDefaults()

	return config, nil
}

// applyDefaults fills unset perf targets with the built-in values so a
// partial perf section never zeroes out the remaining budgets.
func (p *Perf) applyDefaults() {
	defaults := Default().Perf
	if p.AverageGenerationTimeMs == 0 {
		p.AverageGenerationTimeMs = defaults.AverageGenerationTimeMs
	}
	if p.P95GenerationTimeMs == 0 {
		p.P95GenerationTimeMs = defaults.P95GenerationTimeMs
	}
	if p.LOD0MemoryLimitMB == 0 {
		p.LOD0MemoryLimitMB = defaults.LOD0MemoryLimitMB
	}
	if p.MaxTrianglesPerChunk == 0 {
		p.MaxTrianglesPerChunk = defaults.MaxTrianglesPerChunk
	}
	if p.TestTimeoutMinutes == 0 {
		p.TestTimeoutMinutes = defaults.TestTimeoutMinutes
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Validator: Validator{
			Extensions: []string{".h"},
		},
		Perf: Perf{
			AverageGenerationTimeMs: 5.0,
			P95GenerationTimeMs:     9.0,
			LOD0MemoryLimitMB:       64,
			MaxTrianglesPerChunk:    8000,
			TestTimeoutMinutes:      10,
		},
	}
}

// Extensions returns the tracked header extensions, falling back to the
// default when the config file cleared them.
func Extensions(cfg *Config) []string {
	if cfg == nil || len(cfg.Validator.Extensions) == 0 {
		return []string{".h"}
	}
	return cfg.Validator.Extensions
}
