package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDepthsInput = "inputs/day1.txt"
	DefaultCourseInput = "inputs/day2.txt"
	DefaultWindow      = 3
)

type Config struct {
	Depths DepthsConfig `yaml:"depths"`
	Course CourseConfig `yaml:"course"`
}

// DepthsConfig drives day 1.
type DepthsConfig struct {
	Input  string `yaml:"input" validate:"required"`
	Window int    `yaml:"window" validate:"min=1"`
}

// CourseConfig drives day 2.
type CourseConfig struct {
	Input string `yaml:"input" validate:"required"`
}

var validate = validator.New()

func Default() Config {
	return Config{
		Depths: DepthsConfig{Input: DefaultDepthsInput, Window: DefaultWindow},
		Course: CourseConfig{Input: DefaultCourseInput},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
