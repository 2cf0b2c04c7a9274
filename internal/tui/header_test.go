package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeader(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"zero width", 0},
		{"negative width", -10},
		{"narrow width", 40},
		{"threshold width", 80},
		{"wide width", 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeader(tc.width)
			require.NotNil(t, h)
			assert.Equal(t, tc.width, h.width)
		})
	}
}

func TestHeader_WithWidth(t *testing.T) {
	h := NewHeader(80)
	h2 := h.WithWidth(120)

	// Original unchanged
	assert.Equal(t, 80, h.width)
	// New has updated width
	assert.Equal(t, 120, h2.width)
}

func TestHeader_Render_WideMode(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"exactly 80 columns", 80},
		{"100 columns", 100},
		{"120 columns", 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeader(tc.width)
			result := h.Render()

			// Wide mode should render the block banner.
			assert.Contains(t, result, "___", "should contain block banner characters")

			// Should NOT contain the narrow header marker.
			assert.NotContains(t, result, narrowHeader, "should not contain narrow header")
		})
	}
}

func TestHeader_Render_NarrowMode(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"79 columns (just under threshold)", 79},
		{"40 columns", 40},
		{"20 columns", 20},
		{"zero width (fallback)", 0},
		{"negative width (fallback)", -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeader(tc.width)
			result := h.Render()

			assert.Contains(t, result, "coltable", "should contain coltable text")

			// Should NOT contain the wide block banner.
			assert.NotContains(t, result, "___", "should not contain wide banner")
		})
	}
}

func TestHeader_Render_Centered(t *testing.T) {
	h := NewHeader(100)
	result := h.Render()

	// The first line should have leading padding from centering.
	firstLineEnd := len(result)
	if idx := indexOf(result, "\n"); idx >= 0 {
		firstLineEnd = idx
	}
	firstLine := result[:firstLineEnd]
	plain := stripANSI(firstLine)
	assert.True(t, len(plain) > 0 && plain[0] == ' ', "wide header's first line should be centered with leading padding")
}

func TestHeader_Render_NOCOLORSupport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	CheckNoColor()

	tests := []struct {
		name     string
		width    int
		contains string
	}{
		{"wide mode with NO_COLOR", 80, "___"},
		{"narrow mode with NO_COLOR", 40, "coltable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeader(tc.width)
			result := h.Render()

			assert.NotEmpty(t, result)
			assert.Contains(t, result, tc.contains)
		})
	}
}

func TestHeader_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected string
	}{
		{"zero width returns narrow header", 0, "coltable"},
		{"negative width returns narrow header", -100, "coltable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHeader(tc.width)
			result := h.Render()
			assert.Contains(t, result, tc.expected)
		})
	}
}

func TestRenderHeader(t *testing.T) {
	result := RenderHeader(100)
	assert.NotEmpty(t, result)
	assert.Contains(t, result, "___")
}

func TestRenderHeaderAuto(t *testing.T) {
	result := RenderHeaderAuto()
	assert.NotEmpty(t, result)
}

func TestGetTerminalWidth(t *testing.T) {
	width := GetTerminalWidth()
	assert.GreaterOrEqual(t, width, 0)
}

func TestHeader_ConsistentOutput(t *testing.T) {
	h1 := NewHeader(100)
	h2 := NewHeader(100)

	result1 := h1.Render()
	result2 := h2.Render()

	assert.Equal(t, result1, result2, "same width should produce identical output")
}

func TestWideThreshold(t *testing.T) {
	narrowH := NewHeader(79)
	wideH := NewHeader(80)

	narrowResult := narrowH.Render()
	wideResult := wideH.Render()

	assert.Contains(t, narrowResult, narrowHeader)
	assert.NotContains(t, narrowResult, "___")

	assert.Contains(t, wideResult, "___")
	assert.NotContains(t, wideResult, narrowHeader)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
