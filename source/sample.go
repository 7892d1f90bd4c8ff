package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yaoapp/agenda/excel"
	"github.com/yaoapp/agenda/week"
)

var sampleQuotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Well begun is half done.", Author: "Aristotle"},
}

var sampleIdeas = []string{
	"Batch similar tasks together",
	"Close the week with a short review",
}

const sampleConcept = "Focus on the essentials"

// WriteSample writes a starter source file for the week of first.
// The format follows the file extension.
func WriteSample(path string, first time.Time) error {
	kind, err := Detect(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	monday := week.MondayOf(first)
	if kind == KindWorkbook {
		return writeSampleWorkbook(path, monday)
	}
	return writeSampleCSV(path, monday)
}

func writeSampleCSV(path string, monday time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	date := func(offset int) string {
		return monday.AddDate(0, 0, offset).Format("01/02/2006")
	}

	header := []string{"Date", "Type"}
	for i := 1; i <= CSVLines; i++ {
		header = append(header, fmt.Sprintf("Line%d", i))
	}

	records := [][]string{
		header,
		{date(0), TypeConcept, sampleConcept},
		{date(0), TypeQuote, sampleQuotes[0].Text, sampleQuotes[0].Author},
		{date(0), TypeIdea, sampleIdeas[0]},
		{date(0), TypeDay, "Team meeting", "", "Call the bank"},
		{date(2), TypeDay, "Dentist 3pm"},
		{date(7), TypeQuote, sampleQuotes[1].Text, sampleQuotes[1].Author},
		{date(7), TypeIdea, sampleIdeas[1]},
		{date(8), TypeDay, "Project review", "Send the weekly report"},
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s failed: %w", path, err)
	}
	return file.Close()
}

func writeSampleWorkbook(path string, monday time.Time) error {
	xls, err := excel.New(SheetEvents)
	if err != nil {
		return err
	}
	defer xls.Close()

	events := [][]interface{}{
		{"Date", "Event 1", "Event 2", "Event 3", "Event 4", "Event 5"},
		{monday, "Team meeting", "", "Call the bank"},
		{monday.AddDate(0, 0, 2), "Dentist 3pm"},
		{monday.AddDate(0, 0, 8), "Project review", "Send the weekly report"},
	}
	if err := xls.WriteAll(SheetEvents, "A1", events); err != nil {
		return err
	}

	quotes := [][]interface{}{{"Quote", "Author", "Idea"}}
	for i, quote := range sampleQuotes {
		quotes = append(quotes, []interface{}{quote.Text, quote.Author, sampleIdeas[i]})
	}
	if err := xls.WriteAll(SheetQuotes, "A1", quotes); err != nil {
		return err
	}

	concepts := [][]interface{}{
		{"Date", "Concept"},
		{monday, sampleConcept},
	}
	if err := xls.WriteAll(SheetConcepts, "A1", concepts); err != nil {
		return err
	}

	return xls.Save(path)
}
