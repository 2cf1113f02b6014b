package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML shape. Every field is optional; unset
// fields keep the value already in the Config being layered onto.
type FileConfig struct {
	TargetNames []string `yaml:"target_names,omitempty"`
	SlotCount   *int     `yaml:"slot_count,omitempty"`
	StartDate   *int     `yaml:"start_date,omitempty"`
	Input       *string  `yaml:"input,omitempty"`
	Output      *string  `yaml:"output,omitempty"`
	DB          *string  `yaml:"db,omitempty"`
	LogLevel    *string  `yaml:"log_level,omitempty"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &fc, nil
}

func applyFile(cfg Config, path string) (Config, error) {
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return fc.Apply(cfg), nil
}

// Apply layers the file's set fields over cfg.
func (fc *FileConfig) Apply(cfg Config) Config {
	if len(fc.TargetNames) > 0 {
		cfg = cfg.WithNames(fc.TargetNames)
	}
	cfg.SlotCount = intOr(fc.SlotCount, cfg.SlotCount)
	cfg.StartDate = intOr(fc.StartDate, cfg.StartDate)
	cfg.InputPath = strOr(fc.Input, cfg.InputPath)
	cfg.OutputPath = strOr(fc.Output, cfg.OutputPath)
	cfg.DBPath = strOr(fc.DB, cfg.DBPath)
	cfg.LogLevel = strOr(fc.LogLevel, cfg.LogLevel)
	return cfg
}

func intOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func strOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}
