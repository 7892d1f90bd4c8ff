package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/yaoapp/agenda/agenda"
)

// Text writes a plain transcript of every week
type Text struct {
	w io.Writer
}

// NewText create a transcript renderer
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// RenderWeek write the transcript of the week
func (text *Text) RenderWeek(content agenda.WeeklyContent) error {
	b := &strings.Builder{}
	fmt.Fprintln(b, color.CyanString("Week of %s", content.Monday.Format("Mon Jan 2 2006")))

	if content.Concept != "" {
		fmt.Fprintf(b, "%s %s\n", color.GreenString("Concept of the quarter:"), content.Concept)
	}

	if content.Quote != nil {
		quote := fmt.Sprintf("\"%s\"", content.Quote.Text)
		if content.Quote.Author != "" {
			quote = fmt.Sprintf("%s -- %s", quote, content.Quote.Author)
		}
		fmt.Fprintf(b, "%s %s\n", color.GreenString("Quote of the week:"), quote)
	}

	if content.Idea != "" {
		fmt.Fprintf(b, "%s %s\n", color.GreenString("Idea of the week:"), content.Idea)
	}

	for _, day := range content.Days {
		if len(day.Lines) == 0 {
			fmt.Fprintf(b, "%d\n", day.Date.Day())
			continue
		}
		fmt.Fprintf(b, "%d %s\n", day.Date.Day(), day.Text())
	}

	_, err := io.WriteString(text.w, b.String())
	return err
}
