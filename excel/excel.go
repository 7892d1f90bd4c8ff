package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Excel the excel workbook
type Excel struct {
	path string
	*excelize.File
}

// Open open the workbook for reading
func Open(path string) (*Excel, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open file %s failed: %w", absPath, err)
	}
	defer file.Close()

	excelFile, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("read workbook %s failed: %w", absPath, err)
	}

	return &Excel{path: absPath, File: excelFile}, nil
}

// New creates a new workbook, the first sheet is renamed to the given name
func New(first string) (*Excel, error) {
	f := excelize.NewFile()
	if first != "" && first != f.GetSheetName(0) {
		if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &Excel{File: f}, nil
}

// Path the absolute path of an opened workbook
func (excel *Excel) Path() string {
	return excel.path
}

// Save write the workbook to the path
func (excel *Excel) Save(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return err
	}

	if err := excel.SaveAs(absPath); err != nil {
		return fmt.Errorf("save workbook %s failed: %w", absPath, err)
	}
	excel.path = absPath
	return nil
}
