package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can come from a YAML file. Command line flags override them.
type Config struct {
	LogLevel string     `yaml:"log_level"`
	Output   string     `yaml:"output"`
	Check    bool       `yaml:"check"`
	Color    bool       `yaml:"color"`
	Draw     DrawConfig `yaml:"draw"`
}

// Hole outline drawing. Nothing is drawn when Dir is empty.
type DrawConfig struct {
	Dir    string  `yaml:"dir"`
	Scale  float64 `yaml:"scale"`
	Imgcat bool    `yaml:"imgcat"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Check:    true,
		Color:    true,
		Draw:     DrawConfig{Scale: 100},
	}
}

// Read a config on top of the defaults. Keys that are not part of Config are
// an error, so typos don't go unnoticed.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func LoadConfigFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	config, err := LoadConfig(file)
	return config, errors.Wrapf(err, "config %s", path)
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	if c.Draw.Scale <= 0 {
		return errors.Errorf("draw.scale must be positive, got %v", c.Draw.Scale)
	}
	return nil
}
