package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolSortAsc = "▲"
	SymbolSortDsc = "▼"
)

var noColorOverride bool

// SetNoColor forces colors off for this process (e.g. --no-color flag)
func SetNoColor(v bool) {
	noColorOverride = v
}

// NoColor checks if colors should be disabled
func NoColor() bool {
	return noColorOverride || os.Getenv("NO_COLOR") != "" || os.Getenv("GRIDVIEW_NO_COLOR") != ""
}

// IsAccessible checks if accessibility mode is enabled
// When enabled: no spinner animation, simplified output
func IsAccessible() bool {
	return os.Getenv("GRIDVIEW_ACCESSIBLE") == "1" || os.Getenv("GRIDVIEW_ACCESSIBLE") == "true"
}

// Base text styles
var (
	Bold = lipgloss.NewStyle().Bold(true)
	Dim  = lipgloss.NewStyle().Foreground(Muted)
)

// Semantic styles - use these instead of raw colors
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Grid display
	HeaderStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	SortHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSortKey)
	TitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	PageBarStyle    = lipgloss.NewStyle().Foreground(ColorPageBar)
	ActivePageStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorActivePin)
	SelectedStyle   = lipgloss.NewStyle().Background(BgHighlight).Foreground(TextPrimary)
	StaleStyle      = lipgloss.NewStyle().Foreground(ColorStale)

	// Help bar
	HelpKey   = lipgloss.NewStyle().Foreground(Accent)
	HelpValue = lipgloss.NewStyle().Foreground(Muted)
)

// render applies a style if colors are enabled
func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// ═══════════════════════════════════════════════════════════════════════════
// Message formatters - structured output
// ═══════════════════════════════════════════════════════════════════════════

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", render(WarningStyle, symbol), msg)
}

// InfoMsg formats an info message
func InfoMsg(msg string) string {
	return render(InfoStyle, msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return render(MutedStyle, msg)
}

// Title formats a view heading
func Title(msg string) string {
	return render(TitleStyle, msg)
}

// Header formats a column header, highlighted when it carries the sort
func Header(label string, active bool) string {
	if active {
		return render(SortHeaderStyle, label)
	}
	return render(HeaderStyle, label)
}

// Printf-style color helpers
func Mutef(format string, a ...any) string   { return MutedMsg(fmt.Sprintf(format, a...)) }
func Errorf(format string, a ...any) string  { return render(ErrorStyle, fmt.Sprintf(format, a...)) }
func Boldf(format string, a ...any) string   { return render(Bold, fmt.Sprintf(format, a...)) }
func Warningf(format string, a ...any) string { return render(WarningStyle, fmt.Sprintf(format, a...)) }
