// Package config provides configuration management for the coltable CLI
// with layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (COLTABLE_* prefix)
//  2. Project config (./.coltable.yaml)
//  3. Global config (~/.coltable/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
package config

// Config is the root configuration structure for the coltable CLI.
type Config struct {
	// Render contains the default layout and formatting settings applied
	// when no flag overrides them.
	Render RenderConfig `yaml:"render" mapstructure:"render"`
}

// RenderConfig mirrors the table options a caller would otherwise have to
// pass on every invocation: terminal budget, color policy, and glyph set.
type RenderConfig struct {
	// MaxWidth is loaded and checked to be non-negative, but no render
	// path reads it: layout always uses the detected terminal width (80
	// columns when output is not a terminal), whatever this value is.
	MaxWidth int `yaml:"max_width" mapstructure:"max_width"`

	// TermReduce is subtracted from the detected terminal width before the
	// layout solver runs, leaving room for a caller's own prompt or margin.
	TermReduce int `yaml:"term_reduce" mapstructure:"term_reduce"`

	// Colors enables ANSI color output for columns/lines/cells that
	// declare one.
	Colors bool `yaml:"colors" mapstructure:"colors"`

	// MaxOut pads every row to the full negotiated column width instead of
	// leaving short values unpadded.
	MaxOut bool `yaml:"max_out" mapstructure:"max_out"`

	// Symbols selects the tree glyph set: "unicode" (default) or "ascii".
	Symbols string `yaml:"symbols" mapstructure:"symbols"`
}
