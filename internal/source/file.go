package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taisazevedo9/gridview/internal/dataview"
	"github.com/taisazevedo9/gridview/internal/util"
)

// File returns a source that reads records from a JSON array or YAML
// sequence of objects. Re-running the fetch re-reads the file, so a
// refetch picks up on-disk changes.
func File(path string) Func {
	return func(ctx context.Context) (Result, error) {
		rows, err := ReadRecords(path)
		if err != nil {
			return Result{}, err
		}
		return Result{Rows: rows, Total: len(rows)}, nil
	}
}

// ReadRecords loads a record file into rows. The format follows the
// file extension.
func ReadRecords(path string) ([]dataview.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSONRecords(data)
	case ".yaml", ".yml":
		return decodeYAMLRecords(data)
	default:
		return nil, util.ErrUnsupportedFile
	}
}

func decodeJSONRecords(data []byte) ([]dataview.Row, error) {
	var rows []dataview.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode json records: %w", err)
	}
	return rows, nil
}

func decodeYAMLRecords(data []byte) ([]dataview.Row, error) {
	var rows []dataview.Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode yaml records: %w", err)
	}
	return rows, nil
}
