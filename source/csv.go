package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yaoapp/agenda/week"
	"github.com/yaoapp/kun/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func openCSV(path string, options Options) (*Data, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	return parseCSV(decode(content, path), path, options)
}

// decode reads spreadsheet exports saved as Windows-1252 as UTF-8
func decode(content []byte, path string) io.Reader {
	if utf8.Valid(content) {
		return bytes.NewReader(content)
	}
	log.Warn("source %s is not UTF-8, reading it as Windows-1252", path)
	return transform.NewReader(bytes.NewReader(content), charmap.Windows1252.NewDecoder())
}

// parseCSV reads the row-tagged format. The header names the columns
// Date, Type and Line1..Line8 in any order.
func parseCSV(r io.Reader, path string, options Options) (*Data, error) {
	data := newData(path, KindCSV)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err == io.EOF {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, has := columns[name]; !has {
			columns[name] = i
		}
	}
	for _, required := range []string{"date", "type"} {
		if _, has := columns[required]; !has {
			return nil, fmt.Errorf("%s: missing column %q", path, required)
		}
	}

	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++

		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				row = perr.Line
			}
			if err := data.reject(&RowError{File: path, Row: row, Err: err}, options); err != nil {
				return nil, err
			}
			continue
		}

		if line, _ := reader.FieldPos(0); line > 0 {
			row = line
		}

		if isBlank(record) {
			continue
		}

		field := func(name string) string {
			i, has := columns[name]
			if !has {
				return ""
			}
			return cell(record, i)
		}

		date, err := week.Parse(strings.TrimSpace(field("date")))
		if err != nil {
			rowErr := &RowError{File: path, Row: row, Err: fmt.Errorf("invalid date %q", field("date"))}
			if err := data.reject(rowErr, options); err != nil {
				return nil, err
			}
			continue
		}

		switch typ := strings.ToLower(strings.TrimSpace(field("type"))); typ {
		case TypeQuote:
			data.Quotes[week.MondayOf(date)] = Quote{Text: field("line1"), Author: field("line2")}

		case TypeIdea:
			data.Ideas[week.MondayOf(date)] = field("line1")

		case TypeConcept:
			data.Concepts.Add(date, field("line1"))

		case TypeDay:
			lines := make([]string, CSVLines)
			for i := range lines {
				lines[i] = field(fmt.Sprintf("line%d", i+1))
			}
			data.Days[date] = lines

		default:
			rowErr := &RowError{File: path, Row: row, Err: fmt.Errorf("%w %q", ErrUnknownType, typ)}
			if err := data.reject(rowErr, options); err != nil {
				return nil, err
			}
			continue
		}
		data.Rows++
	}

	return data, nil
}
