// Package viewdef loads table view definitions: the title, page size,
// and column descriptors for one view. Definitions live in YAML files so
// a view can be shared between the TUI and the page server; when no
// definition is given, columns are inferred from the data itself.
package viewdef

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

// Column is one column descriptor as written in a definition file.
type Column struct {
	Key        string `yaml:"key"`
	Label      string `yaml:"label"`
	Sortable   bool   `yaml:"sortable"`
	Filterable bool   `yaml:"filterable"`
}

// Definition describes one table view.
type Definition struct {
	Title        string   `yaml:"title"`
	ItemsPerPage int      `yaml:"items_per_page"`
	Columns      []Column `yaml:"columns"`
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode view definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition for the mistakes a hand-written YAML
// file tends to contain.
func (d *Definition) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("view definition has no columns")
	}
	if d.ItemsPerPage < 0 {
		return fmt.Errorf("items_per_page must not be negative")
	}
	seen := make(map[string]bool, len(d.Columns))
	for i, c := range d.Columns {
		if c.Key == "" {
			return fmt.Errorf("column %d has no key", i+1)
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}

// DataColumns converts the definition into engine column descriptors.
// Columns without a label get one derived from the key.
func (d *Definition) DataColumns() []dataview.Column {
	cols := make([]dataview.Column, len(d.Columns))
	for i, c := range d.Columns {
		label := c.Label
		if label == "" {
			label = labelFor(c.Key)
		}
		cols[i] = dataview.Column{
			Key:        c.Key,
			Label:      label,
			Sortable:   c.Sortable,
			Filterable: c.Filterable,
		}
	}
	return cols
}

// Infer derives sortable columns from the top-level keys of the first
// row, in stable alphabetical order. Used when no definition file is
// given.
func Infer(rows []dataview.Row) []dataview.Column {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]dataview.Column, len(keys))
	for i, k := range keys {
		cols[i] = dataview.Column{Key: k, Label: labelFor(k), Sortable: true}
	}
	return cols
}

// FromKeys builds sortable column descriptors from an ordered key list,
// e.g. the column order reported by a query result.
func FromKeys(keys []string) []dataview.Column {
	cols := make([]dataview.Column, len(keys))
	for i, k := range keys {
		cols[i] = dataview.Column{Key: k, Label: labelFor(k), Sortable: true}
	}
	return cols
}

// labelFor turns a key path into a readable header: the last path
// segment with underscores spaced out and the first letter upper-cased.
func labelFor(key string) string {
	seg := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		seg = key[i+1:]
	}
	seg = strings.ReplaceAll(seg, "_", " ")
	if seg == "" {
		return key
	}
	return strings.ToUpper(seg[:1]) + seg[1:]
}
