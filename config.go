package ep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the default config path.
const ConfigEnv = "EP_CONFIG"

// Config holds the settings of the ep command.
type Config struct {
	Path    string `yaml:"-"`
	Verbose bool   `yaml:"verbose"`
	Trace   bool   `yaml:"trace"`
	Bench   Bench  `yaml:"bench"`
}

// Bench configures repeated runs of one input.
type Bench struct {
	Iterations int    `yaml:"iterations"`
	Expected   string `yaml:"expected"` // hash in hex, empty skips the check
	Results    string `yaml:"results"`  // file to append result rows to
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{Bench: Bench{Iterations: 5}}
}

// LoadConfig parses the YAML file at path over the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Bench.Iterations < 1 {
		return fmt.Errorf("bench.iterations must be at least 1, got %d", c.Bench.Iterations)
	}
	if c.Bench.Expected != "" {
		if _, err := ParseHash(c.Bench.Expected); err != nil {
			return fmt.Errorf("bench.expected: %w", err)
		}
	}
	return nil
}

// ParseHash parses a hash as printed by the ep command.
func ParseHash(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "0x"), 16, 64)
}
