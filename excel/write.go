package excel

import (
	"github.com/xuri/excelize/v2"
)

// WriteRow write the row
func (excel *Excel) WriteRow(sheet string, cell string, value []interface{}) error {

	_, err := excel.SetSheet(sheet)
	if err != nil {
		return err
	}

	return excel.SetSheetRow(sheet, cell, &value)
}

// WriteAll write all the rows starting at the cell, the sheet is created if missing
func (excel *Excel) WriteAll(sheet string, cell string, rows [][]interface{}) error {

	_, err := excel.SetSheet(sheet)
	if err != nil {
		return err
	}

	// If no data to write, return
	if len(rows) == 0 {
		return nil
	}

	currentCell := cell
	for _, row := range rows {
		if err := excel.WriteRow(sheet, currentCell, row); err != nil {
			return err
		}

		// Move to next row
		colIndex, rowIndex, err := excelize.CellNameToCoordinates(currentCell)
		if err != nil {
			return err
		}
		currentCell, err = excelize.CoordinatesToCellName(colIndex, rowIndex+1)
		if err != nil {
			return err
		}
	}
	return nil
}

// SetSheet returns the index of the sheet, creating it when missing
func (excel *Excel) SetSheet(name string) (int, error) {

	idx, err := excel.GetSheetIndex(name)
	if err != nil {
		return 0, err
	}

	if idx == -1 {
		idx, err = excel.NewSheet(name)
		if err != nil {
			return 0, err
		}
	}
	return idx, nil
}
