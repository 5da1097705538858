package grid

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedLines counts how many rendered rows differ between two
// snapshots of the same view. The TUI uses it after a refetch to flash
// how much of the visible data actually moved.
func ChangedLines(before, after []string) int {
	if len(before) == 0 {
		return len(after)
	}

	// Every line gets a trailing newline so line-mode diffing treats the
	// final row like any other.
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	inserted, deleted := 0, 0
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += n
		case diffmatchpatch.DiffDelete:
			deleted += n
		}
	}
	// A replaced row shows up as one delete plus one insert.
	if inserted > deleted {
		return inserted
	}
	return deleted
}

func countLines(s string) int {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
