package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Initialize sets the background the palette renders for.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Badge renders a slot state, policy or module mode name.
func Badge(value string) string {
	return styleFor(value).Render(value)
}

func styleFor(value string) lipgloss.Style {
	switch strings.ToLower(value) {
	case "set", "eager", "true":
		return SuccessStyle
	case "fallback", "lazy", "triggered":
		return WarningStyle
	case "unavailable", "required":
		return ErrorStyle
	case "plain":
		return InfoStyle
	default:
		return MutedStyle
	}
}

// Truncate shortens s to at most width terminal columns, ending with "..." when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
