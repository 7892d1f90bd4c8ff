package agenda

import (
	"fmt"
	"time"

	"github.com/yaoapp/agenda/source"
	"github.com/yaoapp/agenda/week"
	"github.com/yaoapp/kun/log"
)

// Renderer receives the weeks in traversal order
type Renderer interface {
	RenderWeek(content WeeklyContent) error
}

// RendererFunc adapts a function to a Renderer
type RendererFunc func(content WeeklyContent) error

// RenderWeek calls f(content)
func (f RendererFunc) RenderWeek(content WeeklyContent) error {
	return f(content)
}

// Result the outcome of a traversal
type Result struct {
	First time.Time `json:"first"` // Monday of the first week
	Last  time.Time `json:"last"`  // Monday of the last week
	Weeks int       `json:"weeks"`
}

// Generate walks the weeks of [first, last] and renders each of them
func Generate(data *source.Data, first, last time.Time, r Renderer) (Result, error) {
	result := Result{}
	if err := ValidateRange(first, last); err != nil {
		return result, err
	}

	for monday := range week.Weeks(first, last) {
		content := Resolve(data, monday, result.Weeks)
		if err := r.RenderWeek(content); err != nil {
			return result, fmt.Errorf("render week of %s: %w", monday.Format("2006-01-02"), err)
		}

		if result.Weeks == 0 {
			result.First = monday
		}
		result.Last = monday
		result.Weeks++
		log.Trace("week %d %s rendered", content.Ordinal, monday.Format("2006-01-02"))
	}

	return result, nil
}

type multi []Renderer

// Multi renders every week with each of the renderers, in order
func Multi(renderers ...Renderer) Renderer {
	return multi(renderers)
}

func (m multi) RenderWeek(content WeeklyContent) error {
	for _, r := range m {
		if err := r.RenderWeek(content); err != nil {
			return err
		}
	}
	return nil
}
