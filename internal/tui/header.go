// Package tui provides terminal user interface components for coltable.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Banner text for the coltable demo CLI header.
const (
	// wideHeader is the block-letter banner for terminals wide enough to show it.
	wideHeader = `  ___  ___  _  _____  _   ___ _    ___
 / __|/ _ \| ||_   _/\| | | __| |  | __|
| (__| (_) | |__| |/    \| | _|| |__| _|
 \___|\___/|____|_/_/\_\_|___|____|___|`

	// narrowHeader is the simple text header for terminals < wideThreshold columns.
	narrowHeader = "=== coltable ==="

	// wideThreshold is the minimum terminal width for displaying the block banner.
	wideThreshold = 80
)

// Header renders the coltable banner component.
// Supports wide mode (block banner) and narrow mode (simple text).
type Header struct {
	width int
}

// NewHeader creates a new Header with the specified terminal width.
// Width of 0 or less triggers narrow mode (safe default).
func NewHeader(width int) *Header {
	return &Header{width: width}
}

// WithWidth returns a new Header with the specified width.
// Builder pattern for fluent configuration.
func (h *Header) WithWidth(w int) *Header {
	return &Header{width: w}
}

// Render returns the header string, centered for the current width.
// Wide mode (>= wideThreshold cols) shows the block banner; narrow mode shows simple text.
func (h *Header) Render() string {
	if h.width >= wideThreshold {
		return h.renderWide()
	}
	return h.renderNarrow()
}

// renderWide returns the block banner, styled with gradient colors and centered.
func (h *Header) renderWide() string {
	lines := strings.Split(wideHeader, "\n")
	styledLines := make([]string, 0, len(lines))

	for i, line := range lines {
		colorIdx := i
		if colorIdx >= len(LogoGradientColors) {
			colorIdx = len(LogoGradientColors) - 1
		}
		style := lipgloss.NewStyle().Foreground(LogoGradientColors[colorIdx])

		styledLine := style.Render(line)
		centered := centerText(styledLine, line, h.width)
		styledLines = append(styledLines, centered)
	}

	return strings.Join(styledLines, "\n")
}

// renderNarrow returns the simple text header, centered.
func (h *Header) renderNarrow() string {
	style := lipgloss.NewStyle().Foreground(ColorPrimary)
	styledHeader := style.Render(narrowHeader)
	return centerText(styledHeader, narrowHeader, h.width)
}

// centerText centers styled text based on the original (unstyled) text visual width.
// The styled parameter contains ANSI codes, while original is plain text for width calculation.
func centerText(styled, original string, totalWidth int) string {
	textWidth := runeWidth(original)
	if totalWidth <= 0 || textWidth >= totalWidth {
		return styled
	}
	padding := (totalWidth - textWidth) / 2
	if padding <= 0 {
		return styled
	}
	return strings.Repeat(" ", padding) + styled
}

// runeWidth returns the visual width of a string (rune count).
func runeWidth(s string) int {
	return len([]rune(s))
}

// GetTerminalWidth returns the current terminal width.
// Returns 0 if width cannot be determined (triggers narrow mode fallback).
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// RenderHeader renders the coltable banner at the specified width.
// Convenience function for one-off rendering without creating a Header struct.
func RenderHeader(width int) string {
	return NewHeader(width).Render()
}

// RenderHeaderAuto renders the coltable banner, auto-detecting terminal width.
// Uses narrow mode if width detection fails.
func RenderHeaderAuto() string {
	return NewHeader(GetTerminalWidth()).Render()
}
