package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/agenda/week"
)

const testCSV = `Date,Type,Line1,Line2,Line3,Line4,Line5,Line6,Line7,Line8
08/23/2021,concept,first concept,,,,,,,
10/01/2021,concept,second concept,,,,,,,
09/01/2021,quote,Simplicity is the ultimate sophistication,Leonardo,,,,,,
08/29/2021,idea,Sunday belongs to the next week,,,,,,,
08/30/2021,day,Meeting,,Call,,,,,
08/31/2021,day,,,,,,,,Late slot
`

func TestParseCSV(t *testing.T) {
	data, err := parseCSV(strings.NewReader(testCSV), "agenda.csv", Options{Strict: true})
	require.NoError(t, err)

	assert.Equal(t, 6, data.Rows)
	assert.Equal(t, 2, data.Concepts.Len())
	assert.Equal(t, Quote{Text: "Simplicity is the ultimate sophistication", Author: "Leonardo"}, data.Quotes[week.Date(2021, 8, 30)])

	// quote and idea rows are keyed by the Monday of their week
	_, has := data.Quotes[week.Date(2021, 9, 1)]
	assert.False(t, has)
	assert.Equal(t, "Sunday belongs to the next week", data.Ideas[week.Date(2021, 8, 30)])

	// concept and day rows are keyed by the exact date
	label, ok := data.Concepts.LabelFor(week.Date(2021, 9, 30))
	assert.True(t, ok)
	assert.Equal(t, "first concept", label)

	lines, has := data.Day(week.Date(2021, 8, 30))
	assert.True(t, has)
	assert.Equal(t, []string{"Meeting", "", "Call", "", "", "", "", ""}, lines)

	lines, has = data.Day(week.Date(2021, 8, 31))
	assert.True(t, has)
	assert.Equal(t, "Late slot", lines[7])
}

func TestParseCSVHeaderOrder(t *testing.T) {
	content := " type ,LINE1,date\nday,Gym,9/2/2021\n"
	data, err := parseCSV(strings.NewReader(content), "agenda.csv", Options{})
	require.NoError(t, err)

	lines, has := data.Day(week.Date(2021, 9, 2))
	assert.True(t, has)
	assert.Equal(t, "Gym", lines[0])
	assert.Equal(t, "", lines[1])
}

func TestParseCSVMissingColumn(t *testing.T) {
	_, err := parseCSV(strings.NewReader("Date,Line1\n08/30/2021,x\n"), "agenda.csv", Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"type"`)
}

func TestDecodeWindows1252(t *testing.T) {
	// "Caf\xe9" is "Café" in Windows-1252
	content := []byte("Date,Type,Line1\n08/30/2021,day,Caf\xe9\n")
	data, err := parseCSV(decode(content, "agenda.csv"), "agenda.csv", Options{Strict: true})
	require.NoError(t, err)

	lines, ok := data.Day(week.Date(2021, 8, 30))
	require.True(t, ok)
	assert.Equal(t, "Café", lines[0])
}

func TestDecodeUTF8(t *testing.T) {
	content := []byte("Date,Type,Line1\n08/30/2021,day,Café\n")
	data, err := parseCSV(decode(content, "agenda.csv"), "agenda.csv", Options{Strict: true})
	require.NoError(t, err)

	lines, _ := data.Day(week.Date(2021, 8, 30))
	assert.Equal(t, "Café", lines[0])
}

func TestParseCSVEmpty(t *testing.T) {
	data, err := parseCSV(strings.NewReader(""), "agenda.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, data.Rows)
	assert.Empty(t, data.Days)
}

const malformedCSV = `Date,Type,Line1
08/30/2021,day,Meeting
2021-08-31,day,Bad date
08/31/2021,holiday,Unknown type

09/01/2021,idea,Kept
`

func TestParseCSVWarnings(t *testing.T) {
	data, err := parseCSV(strings.NewReader(malformedCSV), "agenda.csv", Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, data.Rows)
	assert.Equal(t, 2, data.WarningCount())

	var rowErr *RowError
	require.True(t, errors.As(data.Warnings.Errors[0], &rowErr))
	assert.Equal(t, 3, rowErr.Row)
	assert.Contains(t, rowErr.Error(), "agenda.csv row 3")
	assert.Contains(t, rowErr.Error(), "2021-08-31")

	require.True(t, errors.As(data.Warnings.Errors[1], &rowErr))
	assert.Equal(t, 4, rowErr.Row)
	assert.True(t, errors.Is(rowErr, ErrUnknownType))

	assert.Equal(t, "Kept", data.Ideas[week.Date(2021, 8, 30)])
}

func TestParseCSVStrict(t *testing.T) {
	_, err := parseCSV(strings.NewReader(malformedCSV), "agenda.csv", Options{Strict: true})
	require.Error(t, err)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Row)
}
