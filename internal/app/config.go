package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/gmc/internal/registry"
	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DefinitionsPath points at task and sort definitions (.hcl file or
	// directory). Without it the semantic pass is skipped.
	DefinitionsPath string `yaml:"definitions"`

	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Workers   int    `yaml:"workers" validate:"min=1"`

	// StrictTypes makes unknown variable types a build error.
	StrictTypes bool `yaml:"strict_types"`
	// Lint enables the condition lint pass.
	Lint bool `yaml:"lint"`

	Vocabulary registry.Vocabulary `yaml:"vocabulary"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "warn",
		Workers:   4,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads YAML from r on top of the defaults. Unknown keys are
// rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed '%s' check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
