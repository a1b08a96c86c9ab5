// Package config loads the gomorse application configuration, a
// thinner version of the teacher's root Config (config.go): one
// top-level struct nesting a section per ambient concern, loaded with
// LoadConfig the same way — read file, yaml.Unmarshal, apply
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwsl/gomorse/morse"
)

// LoggingConfig controls the ambient log.Logger used across gomorse.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// MetricsConfig controls whether a Decoder is instrumented and where
// its metrics get pushed.
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PushURL    string `yaml:"push_url"`
	PushJob    string `yaml:"push_job"`
}

// ServerConfig controls cmd/gomorse-server's listener.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// Config is the application's top-level configuration document.
type Config struct {
	Decoder  morse.DecoderConfig `yaml:"decoder"`
	Logging  LoggingConfig       `yaml:"logging"`
	Metrics  MetricsConfig       `yaml:"metrics"`
	MQTT     morse.MQTTConfig    `yaml:"mqtt"`
	Server   ServerConfig        `yaml:"server"`
}

// Default returns a Config with every section at its documented
// default (morse.DefaultDecoderConfig, a ":8765" server listen address,
// and zero-value logging, metrics and MQTT sections).
func Default() Config {
	return Config{
		Decoder: morse.DefaultDecoderConfig(),
		Server:  ServerConfig{Listen: ":8765"},
	}
}

// Load reads and parses a YAML config file, starting from Default and
// overlaying whatever the file specifies.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	return cfg, nil
}
