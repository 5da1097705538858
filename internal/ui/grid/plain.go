package grid

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

// PrintJSON outputs rows as a JSON array of objects.
func PrintJSON(rows []dataview.Row) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// PrintPlain prints an aligned table snapshot for non-TTY output:
// header, separator, body (or the empty-state placeholder), then the
// results line and page position when pagination is on.
func PrintPlain(t dataview.Table) {
	if t.Title != "" {
		fmt.Println(t.Title)
		fmt.Println()
	}
	if len(t.Headers) == 0 {
		fmt.Println("(no columns)")
		return
	}

	labels := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		labels[i] = h.Label
		if h.Indicator != "" {
			labels[i] += " " + h.Indicator
		}
	}

	widths := make([]int, len(labels))
	for i, l := range labels {
		widths[i] = len([]rune(l))
	}
	for _, row := range t.Body {
		for i, val := range row {
			if i < len(widths) && len([]rune(val)) > widths[i] {
				widths[i] = len([]rune(val))
			}
		}
	}

	for i, l := range labels {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(pad(l, widths[i]))
	}
	fmt.Println()

	for i, w := range widths {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(strings.Repeat("─", w))
	}
	fmt.Println()

	if t.Placeholder != "" {
		fmt.Println(t.Placeholder)
	}
	for _, row := range t.Body {
		for i, val := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				fmt.Print("  ")
			}
			fmt.Print(pad(val, widths[i]))
		}
		fmt.Println()
	}

	if t.Summary != "" {
		fmt.Println()
		fmt.Println(t.Summary)
	}
	if t.Pagination != nil {
		fmt.Printf("Page %d of %d\n", t.Pagination.Current, t.Pagination.Total)
	}
}

// pad adds spaces to reach the desired width (no truncation).
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Truncate shortens a string to fit width, adding "..." if needed.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width > 3 {
		return string(r[:width-3]) + "..."
	}
	return string(r[:width])
}

// PadOrTruncate pads or truncates to exact width (for the TUI grid).
func PadOrTruncate(s string, width int) string {
	if len([]rune(s)) > width {
		return Truncate(s, width)
	}
	return pad(s, width)
}
