package source

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/yaoapp/agenda/week"
	"github.com/yaoapp/kun/log"
)

// Detect returns the kind of the source file by its extension
func Detect(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return KindCSV, nil
	case ".xlsx":
		return KindWorkbook, nil
	}
	return "", fmt.Errorf("%w: %q (expected .csv or .xlsx)", ErrUnsupportedFormat, ext)
}

// Open parses the source file
func Open(path string, options Options) (*Data, error) {
	kind, err := Detect(path)
	if err != nil {
		return nil, err
	}

	var data *Data
	switch kind {
	case KindCSV:
		data, err = openCSV(path, options)
	case KindWorkbook:
		data, err = openWorkbook(path, options)
	}
	if err != nil {
		return nil, err
	}

	log.Info("source %s: %d rows, %d quotes, %d ideas, %d concepts, %d days, %d skipped",
		filepath.Base(path), data.Rows, data.QuoteCount(), data.IdeaCount(),
		data.Concepts.Len(), len(data.Days), data.WarningCount())
	return data, nil
}

func newData(path string, kind Kind) *Data {
	data := &Data{
		Path:     path,
		Kind:     kind,
		Quotes:   map[time.Time]Quote{},
		Ideas:    map[time.Time]string{},
		Concepts: week.NewMarkers(),
		Days:     map[time.Time][]string{},
	}
	if kind == KindWorkbook {
		data.Selection = SelectRoundRobin
	}
	return data
}

// Day returns the raw line slots stored for the date
func (data *Data) Day(date time.Time) ([]string, bool) {
	lines, has := data.Days[week.Truncate(date)]
	return lines, has
}

// QuoteCount the number of quotes
func (data *Data) QuoteCount() int {
	if data.Selection == SelectRoundRobin {
		return len(data.QuoteList)
	}
	return len(data.Quotes)
}

// IdeaCount the number of ideas
func (data *Data) IdeaCount() int {
	if data.Selection == SelectRoundRobin {
		return len(data.IdeaList)
	}
	return len(data.Ideas)
}

// WarningCount the number of skipped rows
func (data *Data) WarningCount() int {
	if data.Warnings == nil {
		return 0
	}
	return len(data.Warnings.Errors)
}

// reject records a malformed row. In strict mode the row error is returned.
func (data *Data) reject(err *RowError, options Options) error {
	if options.Strict {
		return err
	}
	log.Warn("skip row: %s", err.Error())
	data.Warnings = multierror.Append(data.Warnings, err)
	return nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
