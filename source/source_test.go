package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/agenda/week"
)

func TestDetect(t *testing.T) {
	kind, err := Detect("agenda.csv")
	assert.NoError(t, err)
	assert.Equal(t, KindCSV, kind)

	kind, err = Detect("/tmp/Agenda.XLSX")
	assert.NoError(t, err)
	assert.Equal(t, KindWorkbook, kind)

	_, err = Detect("agenda.xls")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Detect("agenda")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "agenda.txt"), Options{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSampleCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.csv")
	require.NoError(t, WriteSample(path, week.Date(2021, 9, 1)))

	data, err := Open(path, Options{Strict: true})
	require.NoError(t, err)

	monday := week.Date(2021, 8, 30)
	assert.Equal(t, KindCSV, data.Kind)
	assert.Equal(t, SelectByWeek, data.Selection)
	assert.Equal(t, 8, data.Rows)
	assert.Equal(t, 2, data.QuoteCount())
	assert.Equal(t, 2, data.IdeaCount())
	assert.Equal(t, sampleQuotes[0], data.Quotes[monday])
	assert.Equal(t, sampleIdeas[1], data.Ideas[monday.AddDate(0, 0, 7)])

	label, ok := data.Concepts.LabelFor(monday)
	assert.True(t, ok)
	assert.Equal(t, sampleConcept, label)

	lines, has := data.Day(monday)
	assert.True(t, has)
	assert.Len(t, lines, CSVLines)
	assert.Equal(t, []string{"Team meeting", "", "Call the bank"}, lines[:3])
}

func TestSampleWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.xlsx")
	require.NoError(t, WriteSample(path, week.Date(2021, 8, 29)))

	data, err := Open(path, Options{Strict: true})
	require.NoError(t, err)

	monday := week.Date(2021, 8, 30)
	assert.Equal(t, KindWorkbook, data.Kind)
	assert.Equal(t, SelectRoundRobin, data.Selection)
	assert.Equal(t, sampleQuotes, data.QuoteList)
	assert.Equal(t, sampleIdeas, data.IdeaList)
	assert.Equal(t, 0, data.WarningCount())

	label, ok := data.Concepts.LabelFor(monday.AddDate(0, 0, 20))
	assert.True(t, ok)
	assert.Equal(t, sampleConcept, label)

	lines, has := data.Day(monday.AddDate(0, 0, 2))
	assert.True(t, has)
	assert.Len(t, lines, WorkbookEvents)
	assert.Equal(t, "Dentist 3pm", lines[0])

	_, has = data.Day(monday.AddDate(0, 0, 1))
	assert.False(t, has)
}

func TestWriteSampleUnsupported(t *testing.T) {
	err := WriteSample(filepath.Join(t.TempDir(), "agenda.pdf"), week.Date(2021, 8, 30))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
