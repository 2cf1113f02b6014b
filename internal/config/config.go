package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultSlotCount  = 36
	DefaultStartDate  = 26
	DefaultOutputPath = "./nitori_schedule.json"
)

// DefaultTargetNames are the staff members extracted when none are configured.
var DefaultTargetNames = []string{"AZAN", "AIMAN", "HANI", "IRFAN"}

// Config holds everything the extraction pipeline needs. Treat it as a value:
// the With* helpers return modified copies.
type Config struct {
	TargetNames []string
	SlotCount   int
	StartDate   int
	InputPath   string
	OutputPath  string
	DBPath      string
	LogLevel    string
}

// DefaultConfig returns a Config with the roster layout of the current document.
func DefaultConfig() Config {
	return Config{
		TargetNames: append([]string(nil), DefaultTargetNames...),
		SlotCount:   DefaultSlotCount,
		StartDate:   DefaultStartDate,
		OutputPath:  DefaultOutputPath,
		DBPath:      defaultDBPath(),
		LogLevel:    "info",
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return applyEnv(DefaultConfig())
}

// Load layers an optional YAML file and then the environment over the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = applyFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("SHIFTROSTER_NAMES"); v != "" {
		cfg = cfg.WithNames(strings.Split(v, ","))
	}
	if v := os.Getenv("SHIFTROSTER_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SlotCount = n
		}
	}
	if v := os.Getenv("SHIFTROSTER_START_DATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.StartDate = n
		}
	}
	if v := os.Getenv("SHIFTROSTER_INPUT"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("SHIFTROSTER_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("SHIFTROSTER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SHIFTROSTER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg
}

// WithNames returns a copy of c targeting the given staff names. Names are
// trimmed, upper-cased and de-duplicated; empty entries are dropped.
func (c Config) WithNames(names []string) Config {
	c.TargetNames = normalizeNames(names)
	return c
}

// DateSequence returns the SlotCount consecutive date indexes starting at StartDate.
func (c Config) DateSequence() []int {
	if c.SlotCount <= 0 {
		return nil
	}
	dates := make([]int, c.SlotCount)
	for i := range dates {
		dates[i] = c.StartDate + i
	}
	return dates
}

func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".shiftroster", "history.db")
	}
	return filepath.Join(home, ".shiftroster", "history.db")
}
