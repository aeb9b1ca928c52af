package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
)

// Dataset maps a key to the rows of one series.
type Dataset map[string][]chart.Row

// Keys returns the dataset keys in sorted order.
func (ds Dataset) Keys() []string {
	keys := make([]string, 0, len(ds))
	for k := range ds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RowCount returns the total number of rows across all keys.
func (ds Dataset) RowCount() int {
	n := 0
	for _, rows := range ds {
		n += len(rows)
	}
	return n
}

// ReadDataset decodes a JSON object of row arrays from r.
//
// Numbers keep their decimal text until conversion, so 1.163 is read back
// exactly as written.
func ReadDataset(r io.Reader) (Dataset, error) {
	var raw map[string][][]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode dataset")
	}

	ds := make(Dataset, len(raw))
	for key, rows := range raw {
		if err := errors.ValidateDataKey(key); err != nil {
			return nil, err
		}
		converted, err := decodeRows(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "dataset %q", key)
		}
		ds[key] = converted
	}
	return ds, nil
}

// ReadRows decodes a bare JSON array of rows from r.
func ReadRows(r io.Reader) ([]chart.Row, error) {
	var raw [][]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode rows")
	}
	rows, err := decodeRows(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode rows")
	}
	return rows, nil
}

// LoadDataset reads the dataset file at path: an .xlsx workbook (see
// [ReadWorkbook]) or a JSON object of row arrays.
func LoadDataset(path string) (Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadWorkbook(path, f)
	}
	ds, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func decodeRows(raw [][]any) ([]chart.Row, error) {
	rows := make([]chart.Row, len(raw))
	for i, r := range raw {
		row, err := decodeRow(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}
	return rows, nil
}

// decodeRow converts decoded JSON or TOML elements to values.
func decodeRow(raw []any) (chart.Row, error) {
	row := make(chart.Row, len(raw))
	for i, v := range raw {
		switch x := v.(type) {
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			row[i] = chart.Number(f)
		case float64:
			row[i] = chart.Number(x)
		case int64:
			row[i] = chart.Number(float64(x))
		case string:
			row[i] = chart.Text(x)
		default:
			return nil, fmt.Errorf("position %d: unsupported value %v (%T)", i, v, v)
		}
	}
	return row, nil
}
