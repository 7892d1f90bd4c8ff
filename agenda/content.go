package agenda

import (
	"strings"
	"time"

	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
)

// WorkDays the number of days of a spread, Monday to Friday
const WorkDays = 5

// WeeklyContent the resolved content of one week
type WeeklyContent struct {
	Monday  time.Time     `json:"monday"`
	Ordinal int           `json:"ordinal"` // 0-based week index since the range start
	Quote   *source.Quote `json:"quote,omitempty"`
	Idea    string        `json:"idea,omitempty"`
	Concept string        `json:"concept,omitempty"`
	Days    []Day         `json:"days"`
}

// Day the event lines of one weekday
type Day struct {
	Date  time.Time `json:"date"`
	Lines []string  `json:"lines,omitempty"`
}

// Text the lines joined for a single line rendering
func (day Day) Text() string {
	return strings.Join(day.Lines, "|")
}

// HasQuote checks if the week has a quote
func (content WeeklyContent) HasQuote() bool {
	return content.Quote != nil
}

// Resolve builds the content of the week starting on monday.
// ordinal drives the round-robin selection of workbook quotes and ideas.
func Resolve(data *source.Data, monday time.Time, ordinal int) WeeklyContent {
	monday = week.MondayOf(monday)
	content := WeeklyContent{
		Monday:  monday,
		Ordinal: ordinal,
		Days:    make([]Day, WorkDays),
	}

	switch data.Selection {
	case source.SelectRoundRobin:
		if n := len(data.QuoteList); n > 0 {
			quote := data.QuoteList[ordinal%n]
			content.Quote = &quote
		}
		if n := len(data.IdeaList); n > 0 {
			content.Idea = data.IdeaList[ordinal%n]
		}

	default:
		if quote, has := data.Quotes[monday]; has {
			content.Quote = &quote
		}
		content.Idea = data.Ideas[monday]
	}

	content.Concept, _ = data.Concepts.LabelFor(monday)

	for i := range content.Days {
		date := monday.AddDate(0, 0, i)
		content.Days[i] = Day{Date: date}
		if slots, has := data.Day(date); has {
			content.Days[i].Lines = nonEmpty(slots)
		}
	}

	return content
}

func nonEmpty(slots []string) []string {
	lines := []string{}
	for _, line := range slots {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
