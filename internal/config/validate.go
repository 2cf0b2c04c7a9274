package config

import (
	"fmt"

	"github.com/mrz1836/coltable/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	return validateRenderConfig(&cfg.Render)
}

// validateRenderConfig checks render-specific configuration values.
func validateRenderConfig(cfg *RenderConfig) error {
	if cfg.MaxWidth < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRender,
			"render.max_width must not be negative, got %d", cfg.MaxWidth)
	}
	if cfg.TermReduce < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRender,
			"render.term_reduce must not be negative, got %d", cfg.TermReduce)
	}
	switch cfg.Symbols {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("%w: render.symbols must be %q or %q, got %q",
			errors.ErrConfigInvalidRender, "unicode", "ascii", cfg.Symbols)
	}
	return nil
}
