package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
)

func byWeekData() *source.Data {
	return &source.Data{
		Kind:      source.KindCSV,
		Selection: source.SelectByWeek,
		Quotes: map[time.Time]source.Quote{
			week.Date(2021, 8, 30): {Text: "Well begun is half done.", Author: "Aristotle"},
		},
		Ideas: map[time.Time]string{
			week.Date(2021, 9, 6): "Walk more",
		},
		Concepts: week.NewMarkers(
			week.Marker{Date: week.Date(2021, 8, 23), Label: "first concept"},
			week.Marker{Date: week.Date(2021, 9, 1), Label: "second concept"},
		),
		Days: map[time.Time][]string{
			week.Date(2021, 8, 30): {"Meeting", "", "Call", "", "", "", "", ""},
			week.Date(2021, 9, 3):  {"", "", "", "", "", "", "", ""},
			week.Date(2021, 9, 4):  {"Saturday is not rendered"},
		},
	}
}

func roundRobinData() *source.Data {
	return &source.Data{
		Kind:      source.KindWorkbook,
		Selection: source.SelectRoundRobin,
		QuoteList: []source.Quote{{Text: "Q0"}, {Text: "Q1"}},
		IdeaList:  []string{"I0", "I1", "I2"},
		Concepts:  week.NewMarkers(),
		Days:      map[time.Time][]string{},
	}
}

func TestResolveByWeek(t *testing.T) {
	content := Resolve(byWeekData(), week.Date(2021, 8, 30), 0)

	assert.Equal(t, week.Date(2021, 8, 30), content.Monday)
	assert.True(t, content.HasQuote())
	assert.Equal(t, "Aristotle", content.Quote.Author)
	assert.Empty(t, content.Idea)
	assert.Equal(t, "first concept", content.Concept)

	assert.Len(t, content.Days, WorkDays)
	for i, day := range content.Days {
		assert.Equal(t, week.Date(2021, 8, 30+i), day.Date)
	}

	// empty slots are dropped, order is kept
	assert.Equal(t, []string{"Meeting", "Call"}, content.Days[0].Lines)
	assert.Equal(t, "Meeting|Call", content.Days[0].Text())
	assert.Empty(t, content.Days[1].Lines)
	assert.Equal(t, "", content.Days[1].Text())
}

func TestResolveNextWeek(t *testing.T) {
	content := Resolve(byWeekData(), week.Date(2021, 9, 6), 1)

	assert.False(t, content.HasQuote())
	assert.Equal(t, "Walk more", content.Idea)
	assert.Equal(t, "second concept", content.Concept)
}

func TestResolveAllSlotsEmpty(t *testing.T) {
	content := Resolve(byWeekData(), week.Date(2021, 8, 30), 0)
	friday := content.Days[4]
	assert.Equal(t, week.Date(2021, 9, 3), friday.Date)
	assert.Empty(t, friday.Lines)
}

func TestResolveNoConcept(t *testing.T) {
	content := Resolve(byWeekData(), week.Date(2021, 8, 16), 0)
	assert.Empty(t, content.Concept)
	assert.False(t, content.HasQuote())
}

func TestResolveAnchorsMonday(t *testing.T) {
	content := Resolve(byWeekData(), week.Date(2021, 9, 1), 0)
	assert.Equal(t, week.Date(2021, 8, 30), content.Monday)
	assert.True(t, content.HasQuote())
}

func TestResolveRoundRobin(t *testing.T) {
	data := roundRobinData()
	quotes := []string{}
	ideas := []string{}
	monday := week.Date(2021, 8, 30)
	for ordinal := 0; ordinal < 5; ordinal++ {
		content := Resolve(data, monday.AddDate(0, 0, 7*ordinal), ordinal)
		quotes = append(quotes, content.Quote.Text)
		ideas = append(ideas, content.Idea)
	}

	assert.Equal(t, []string{"Q0", "Q1", "Q0", "Q1", "Q0"}, quotes)
	assert.Equal(t, []string{"I0", "I1", "I2", "I0", "I1"}, ideas)
}

func TestResolveRoundRobinEmpty(t *testing.T) {
	data := roundRobinData()
	data.QuoteList = nil
	data.IdeaList = nil

	content := Resolve(data, week.Date(2021, 8, 30), 3)
	assert.False(t, content.HasQuote())
	assert.Empty(t, content.Idea)
}

func TestResolveQuoteIsCopy(t *testing.T) {
	data := roundRobinData()
	content := Resolve(data, week.Date(2021, 8, 30), 0)
	content.Quote.Text = "changed"
	assert.Equal(t, "Q0", data.QuoteList[0].Text)
}
