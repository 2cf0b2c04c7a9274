package config

// DefaultConfig returns a new Config with sensible default values. These
// defaults are used as the base layer that can be overridden by config
// files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			// MaxWidth: 0 means detect the terminal width at render time.
			MaxWidth: 0,

			// TermReduce: 0 uses the full detected width.
			TermReduce: 0,

			// Colors: on by default; NO_COLOR and non-terminal output
			// still disable ANSI styling downstream regardless of this.
			Colors: true,

			// MaxOut: off by default, matching the underlying engine's
			// own zero value.
			MaxOut: false,

			// Symbols: "unicode" gives the box-drawing tree glyphs; set
			// to "ascii" for terminals/fonts that can't render them.
			Symbols: "unicode",
		},
	}
}
