package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// HasSheet checks if the sheet exists
func (excel *Excel) HasSheet(name string) bool {
	idx, err := excel.GetSheetIndex(name)
	return err == nil && idx != -1
}

// ListSheets returns a list of all sheet names in the workbook
func (excel *Excel) ListSheets() []string {
	return excel.GetSheetList()
}

// ReadSheet reads all rows of a sheet.
// Cells are returned raw: date cells come back as serial numbers,
// shared strings as their text.
func (excel *Excel) ReadSheet(name string) ([][]string, error) {
	if !excel.HasSheet(name) {
		return nil, fmt.Errorf("sheet %s does not exist", name)
	}

	rows, err := excel.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s failed: %w", name, err)
	}
	return rows, nil
}
