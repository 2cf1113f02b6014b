package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration before a run.
// Returns a slice of all validation errors found.
func (c Config) Validate() []error {
	var errs []error

	if len(c.TargetNames) == 0 {
		errs = append(errs, fmt.Errorf("target_names: at least one staff name is required"))
	}
	for _, n := range c.TargetNames {
		if strings.ContainsAny(n, " \t\r\n") {
			errs = append(errs, fmt.Errorf("target_names: %q must be a single word", n))
		}
	}
	if c.SlotCount <= 0 {
		errs = append(errs, fmt.Errorf("slot_count: must be positive, got %d", c.SlotCount))
	}
	if c.StartDate < 0 {
		errs = append(errs, fmt.Errorf("start_date: must not be negative, got %d", c.StartDate))
	}
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level: invalid value %q", c.LogLevel))
	}

	return errs
}

// FormatErrors joins validation errors into a single error, or returns nil.
func FormatErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msg := fmt.Sprintf("invalid configuration (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
