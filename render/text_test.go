package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
)

func TestTextRenderWeek(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}

	require.NoError(t, NewText(buf).RenderWeek(sampleWeek(week.Date(2021, 8, 30))))
	assert.Equal(t, strings.Join([]string{
		"Week of Mon Aug 30 2021",
		"Concept of the quarter: Focus",
		`Quote of the week: "Simplicity is prerequisite for reliability" -- Dijkstra`,
		"Idea of the week: Plan the week on Sunday",
		"30 Team meeting|Call the bank",
		"31",
		"1 Dentist 3pm",
		"2",
		"3",
	}, "\n")+"\n", buf.String())
}

func TestTextNoContent(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}

	content := sampleWeek(week.Date(2021, 8, 30))
	content.Concept = ""
	content.Idea = ""
	content.Quote = &source.Quote{Text: "Anonymous"}
	require.NoError(t, NewText(buf).RenderWeek(content))

	out := buf.String()
	assert.NotContains(t, out, "Concept of the quarter")
	assert.NotContains(t, out, "Idea of the week")
	assert.Contains(t, out, "Quote of the week: \"Anonymous\"\n")
}

func TestTextGenerate(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}

	_, err := agenda.Generate(sampleData(), week.Date(2021, 8, 30), week.Date(2021, 9, 3), NewText(buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Concept of the quarter: Craft")
	assert.Contains(t, out, "Quote of the week: \"Less is more\" -- Mies")
	assert.Contains(t, out, "Idea of the week: Café on Friday")
	assert.Contains(t, out, "30 Meeting|Call\n")
	assert.Contains(t, out, "2 Review\n")
}
