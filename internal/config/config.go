package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alucardeht/figuras/internal/logger"
	"gopkg.in/yaml.v3"
)

type RectangleSample struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TriangleSample struct {
	Base   float64 `yaml:"base"`
	Height float64 `yaml:"height"`
}

type CircleSample struct {
	Radius float64 `yaml:"radius"`
}

// SamplesConfig holds the dimensions of the shapes the report prints.
type SamplesConfig struct {
	Rectangle RectangleSample `yaml:"rectangle"`
	Triangle  TriangleSample  `yaml:"triangle"`
	Circle    CircleSample    `yaml:"circle"`
}

type ValidationConfig struct {
	// Strict rejects zero, negative and non-finite dimensions.
	Strict bool `yaml:"strict"`
}

type OutputConfig struct {
	Locale  string `yaml:"locale"`
	Details bool   `yaml:"details"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Samples    SamplesConfig    `yaml:"samples"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

func DefaultConfig() *Config {
	return &Config{
		Samples: SamplesConfig{
			Rectangle: RectangleSample{Width: 10, Height: 5},
			Triangle:  TriangleSample{Base: 7, Height: 4},
			Circle:    CircleSample{Radius: 3},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a YAML config over the defaults. An empty path or a missing file
// yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FIGURAS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FIGURAS_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("FIGURAS_LOCALE"); v != "" {
		c.Output.Locale = v
	}
	if v := os.Getenv("FIGURAS_STRICT"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Validation.Strict = b
		}
	}
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}
	return nil
}

func (c *Config) Logger() logger.Config {
	cfg := logger.DefaultConfig()
	if c.Logging.Level != "" {
		cfg.Level = c.Logging.Level
	}
	if c.Logging.Format != "" {
		cfg.Format = c.Logging.Format
	}
	return cfg
}
