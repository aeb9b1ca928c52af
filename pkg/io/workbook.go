package io

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/chartopt/pkg/chart"
	"github.com/matzehuels/chartopt/pkg/errors"
)

// ReadWorkbook decodes an .xlsx workbook from r. Each sheet becomes one
// dataset key holding its rows; blank rows are skipped. Cells that parse as
// finite numbers become numbers and everything else, including empty cells
// between values, becomes text. Sheets carry no header row.
func ReadWorkbook(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	ds := make(Dataset, len(sheets))
	for _, sheet := range sheets {
		if err := errors.ValidateDataKey(sheet); err != nil {
			return nil, err
		}
		cells, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "sheet %q", sheet)
		}

		rows := make([]chart.Row, 0, len(cells))
		for _, line := range cells {
			if len(line) == 0 {
				continue
			}
			rows = append(rows, cellRow(line))
		}
		ds[sheet] = rows
	}
	return ds, nil
}

func cellRow(cells []string) chart.Row {
	row := make(chart.Row, len(cells))
	for i, c := range cells {
		if f, err := strconv.ParseFloat(c, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			row[i] = chart.Number(f)
		} else {
			row[i] = chart.Text(c)
		}
	}
	return row
}

func loadWorkbook(path string, r io.Reader) (Dataset, error) {
	ds, err := ReadWorkbook(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
