package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/yaoapp/agenda/week"
)

// Kind the source file format
type Kind string

const (
	// KindCSV row-tagged delimited text, one typed row per entry
	KindCSV Kind = "csv"
	// KindWorkbook sheet-based xlsx workbook
	KindWorkbook Kind = "xlsx"
)

// Selection how the quote and the idea of a week are picked
type Selection int

const (
	// SelectByWeek look up the entry tagged with the week's Monday
	SelectByWeek Selection = iota
	// SelectRoundRobin pick list[ordinal % len(list)]
	SelectRoundRobin
)

// Row types of the row-tagged format
const (
	TypeQuote   = "quote"
	TypeIdea    = "idea"
	TypeConcept = "concept"
	TypeDay     = "day"
)

// Sheets of the workbook format
const (
	SheetEvents   = "Events"
	SheetQuotes   = "Quotes & Ideas"
	SheetConcepts = "Concepts"
)

const (
	// CSVLines the number of line slots of a day row
	CSVLines = 8
	// WorkbookEvents the number of event slots of an Events row
	WorkbookEvents = 5
)

var (
	// ErrUnsupportedFormat the file extension is neither .csv nor .xlsx
	ErrUnsupportedFormat = errors.New("unsupported source format")
	// ErrUnknownType the row type is not quote, idea, concept or day
	ErrUnknownType = errors.New("unrecognized type")
)

// Options the parse options
type Options struct {
	Strict bool `json:"strict,omitempty"` // abort on the first malformed row
}

// Quote a quote and its author
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// Data the parsed source, read-only once returned
type Data struct {
	Path      string
	Kind      Kind
	Selection Selection
	Quotes    map[time.Time]Quote  // keyed by Monday (SelectByWeek)
	Ideas     map[time.Time]string // keyed by Monday (SelectByWeek)
	QuoteList []Quote              // SelectRoundRobin
	IdeaList  []string             // SelectRoundRobin
	Concepts  *week.Markers
	Days      map[time.Time][]string // raw line slots keyed by the exact date
	Rows      int                    // accepted rows
	Warnings  *multierror.Error      // skipped rows
}

// RowError a malformed source row
type RowError struct {
	File  string
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s [%s] row %d: %s", filepath.Base(e.File), e.Sheet, e.Row, e.Err)
	}
	return fmt.Sprintf("%s row %d: %s", filepath.Base(e.File), e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
