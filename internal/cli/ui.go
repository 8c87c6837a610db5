package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleValue       = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message to stderr, keeping stdout free
// for the JSON result.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printFile prints a file output line to stderr.
func printFile(path string) {
	fmt.Fprintln(os.Stderr, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}
