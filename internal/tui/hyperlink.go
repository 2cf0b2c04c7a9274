package tui

import "os"

// SupportsHyperlinks returns true if the terminal supports OSC 8 hyperlinks.
// Detection is based on known terminal programs that support the feature.
func SupportsHyperlinks() bool {
	termProgram := os.Getenv("TERM_PROGRAM")
	lcTerminal := os.Getenv("LC_TERMINAL")

	if termProgram == "iTerm.app" || termProgram == "vscode" {
		return true
	}
	if lcTerminal == "iTerm2" {
		return true
	}

	// macOS Terminal.app versions vary - safer to use underline fallback
	return false
}

// FormatHyperlink formats a URL as an OSC 8 hyperlink if supported.
// Falls back to plain display text if hyperlinks are not supported.
//
// OSC 8 format: \x1b]8;;URL\x1b\\TEXT\x1b]8;;\x1b\\
func FormatHyperlink(url, displayText string) string {
	if !SupportsHyperlinks() {
		return displayText
	}
	return "\x1b]8;;" + url + "\x1b\\" + displayText + "\x1b]8;;\x1b\\"
}
