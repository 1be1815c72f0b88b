package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithms.
const (
	AlgorithmDFS = "dfs"
	AlgorithmBFS = "bfs"
)

// Problem kinds.
const (
	KindGridMaze    = "gridmaze"
	KindMapColoring = "mapcoloring"
)

// Config is a complete run configuration.
type Config struct {
	Description string        `yaml:"description,omitempty"`
	Algorithm   string        `yaml:"algorithm"`
	MaxDepth    int           `yaml:"max_depth"`
	Log         LogConfig     `yaml:"log"`
	Problem     ProblemConfig `yaml:"problem"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ProblemConfig names the problem kind and carries its raw params.
type ProblemConfig struct {
	Kind   string         `yaml:"kind"`
	Params map[string]any `yaml:"params"`
}

// Default returns a configuration with every field but the problem set.
func Default() *Config {
	return &Config{
		Algorithm: AlgorithmDFS,
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmDFS, AlgorithmBFS:
	default:
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalidConfig, c.MaxDepth)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Problem.Kind {
	case KindGridMaze, KindMapColoring:
	case "":
		return fmt.Errorf("%w: problem kind is required", ErrInvalidConfig)
	default:
		return fmt.Errorf("%w: problem kind %q", ErrInvalidConfig, c.Problem.Kind)
	}

	return nil
}

// Marshal renders c back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeParams maps the raw problem params onto out, a pointer to a struct
// with mapstructure tags. Keys that out does not declare are an error.
func (c *Config) DecodeParams(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("config: params decoder: %w", err)
	}
	if err := dec.Decode(c.Problem.Params); err != nil {
		return fmt.Errorf("%w: %s params: %v", ErrInvalidConfig, c.Problem.Kind, err)
	}

	return nil
}
