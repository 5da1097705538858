package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark mode optimized, semantic colors
var (
	// Primary semantic colors
	Accent  = lipgloss.Color("#7C3AED") // violet-500 - highlights, interactive
	Success = lipgloss.Color("#10B981") // emerald-500 - success messages
	Warning = lipgloss.Color("#F59E0B") // amber-500 - warnings, stale data
	Error   = lipgloss.Color("#EF4444") // red-500 - errors, failed fetches
	Info    = lipgloss.Color("#3B82F6") // blue-500 - column headers, info
	Muted   = lipgloss.Color("#6B7280") // gray-500 - secondary text

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB") // gray-50 - main text
	TextSecondary = lipgloss.Color("#9CA3AF") // gray-400 - descriptions

	// Background colors
	BgHighlight = lipgloss.Color("#1F2937") // gray-800 - selected items
	BgBorder    = lipgloss.Color("#374151") // gray-700 - borders
)

// Semantic color aliases for the grid
var (
	ColorHeader    = Info    // column header text
	ColorSortKey   = Accent  // active sort column
	ColorPageBar   = Muted   // pagination controls
	ColorActivePin = Accent  // current page button
	ColorStale     = Warning // stale-data badge while revalidating
)
