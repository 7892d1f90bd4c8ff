package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
	"github.com/yaoapp/agenda/excel"
	"github.com/yaoapp/agenda/week"
)

// openWorkbook reads the sheet-based format: Events (required),
// Quotes & Ideas and Concepts (optional). Every sheet starts with a header row.
func openWorkbook(path string, options Options) (*Data, error) {
	xls, err := excel.Open(path)
	if err != nil {
		return nil, err
	}
	defer xls.Close()

	data := newData(path, KindWorkbook)

	rows, err := xls.ReadSheet(SheetEvents)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}

		date, err := parseCellDate(cell(row, 0))
		if err != nil {
			if err := data.reject(&RowError{File: path, Sheet: SheetEvents, Row: i + 1, Err: err}, options); err != nil {
				return nil, err
			}
			continue
		}

		lines := make([]string, WorkbookEvents)
		for j := range lines {
			lines[j] = cell(row, j+1)
		}
		data.Days[date] = lines
		data.Rows++
	}

	if xls.HasSheet(SheetQuotes) {
		rows, err := xls.ReadSheet(SheetQuotes)
		if err != nil {
			return nil, err
		}

		for i, row := range rows {
			if i == 0 || isBlank(row) {
				continue
			}
			if text := cell(row, 0); text != "" {
				data.QuoteList = append(data.QuoteList, Quote{Text: text, Author: cell(row, 1)})
			}
			if idea := cell(row, 2); idea != "" {
				data.IdeaList = append(data.IdeaList, idea)
			}
			data.Rows++
		}
	}

	if xls.HasSheet(SheetConcepts) {
		rows, err := xls.ReadSheet(SheetConcepts)
		if err != nil {
			return nil, err
		}

		for i, row := range rows {
			if i == 0 || isBlank(row) {
				continue
			}

			date, err := parseCellDate(cell(row, 0))
			if err != nil {
				if err := data.reject(&RowError{File: path, Sheet: SheetConcepts, Row: i + 1, Err: err}, options); err != nil {
					return nil, err
				}
				continue
			}
			data.Concepts.Add(date, cell(row, 1))
			data.Rows++
		}
	}

	return data, nil
}

// parseCellDate accepts m/d/yyyy and yyyy-mm-dd text, or an Excel serial number
func parseCellDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}

	if date, err := week.Parse(value); err == nil {
		return date, nil
	}

	if date, err := time.Parse("2006-01-02", value); err == nil {
		return week.Truncate(date), nil
	}

	serial, err := cast.ToFloat64E(value)
	if err != nil || serial <= 0 {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return week.Truncate(date), nil
}
