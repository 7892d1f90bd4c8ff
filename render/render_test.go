package render

import (
	"time"

	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
)

func sampleWeek(monday time.Time) agenda.WeeklyContent {
	days := make([]agenda.Day, agenda.WorkDays)
	for i := range days {
		days[i] = agenda.Day{Date: monday.AddDate(0, 0, i)}
	}
	days[0].Lines = []string{"Team meeting", "Call the bank"}
	days[2].Lines = []string{"Dentist 3pm"}
	return agenda.WeeklyContent{
		Monday:  monday,
		Quote:   &source.Quote{Text: "Simplicity is prerequisite for reliability", Author: "Dijkstra"},
		Idea:    "Plan the week on Sunday",
		Concept: "Focus",
		Days:    days,
	}
}

func sampleData() *source.Data {
	monday := week.Date(2021, 8, 30)
	return &source.Data{
		Kind:      source.KindCSV,
		Selection: source.SelectByWeek,
		Quotes:    map[time.Time]source.Quote{monday: {Text: "Less is more", Author: "Mies"}},
		Ideas:     map[time.Time]string{monday: "Café on Friday"},
		Concepts:  week.NewMarkers(week.Marker{Date: week.Date(2021, 8, 1), Label: "Craft"}),
		Days: map[time.Time][]string{
			monday:                  {"Meeting", "", "Call"},
			monday.AddDate(0, 0, 3): {"Review"},
		},
	}
}
