// Package config loads the YAML configuration for the elimination CLI.
//
// Every field has a default, so an absent or partial file is valid:
//
//	algorithm: edmonds-karp   # edmonds-karp | ford-fulkerson | dinic
//	parallelism: 1            # concurrent team checks per division
//	certificates: false       # print a certificate per eliminated team
//	strict: true              # reject inconsistent games matrices
//	verbose_flow: false       # debug-log every augmenting path
//	log:
//	  level: info             # debug | info | warn | error
//	  format: text            # text | json
//	output:
//	  format: ascii           # ascii | markdown | plain
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/logging"
	"github.com/katalvlaran/elimination/report"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Algorithm    string `yaml:"algorithm"`
	Parallelism  int    `yaml:"parallelism"`
	Certificates bool   `yaml:"certificates"`
	Strict       bool   `yaml:"strict"`
	VerboseFlow  bool   `yaml:"verbose_flow"`

	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig selects slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig selects the report layout.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Algorithm:   string(flow.AlgEdmondsKarp),
		Parallelism: 1,
		Strict:      true,
		Log:         LogConfig{Level: "info", Format: string(logging.Text)},
		Output:      OutputConfig{Format: string(report.ASCII)},
	}
}

// Load reads and validates the YAML file at path on top of Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated and numeric field.
func (c Config) Validate() error {
	if _, err := flow.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d < 1", ErrInvalidConfig, c.Parallelism)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// AnalyzerOptions translates the configuration into elimination options.
// The configuration must be valid.
func (c Config) AnalyzerOptions() []elimination.Option {
	alg, _ := flow.ParseAlgorithm(c.Algorithm)
	return []elimination.Option{
		elimination.WithAlgorithm(alg),
		elimination.WithParallelism(c.Parallelism),
		elimination.WithCertificates(c.Certificates),
		elimination.WithStrictValidation(c.Strict),
		elimination.WithVerboseFlow(c.VerboseFlow),
		elimination.WithLogger(logging.New("elimination")),
	}
}
