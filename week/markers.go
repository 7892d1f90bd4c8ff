package week

import (
	"sort"
	"time"
)

// Marker a dated label, effective from its date until the next marker
type Marker struct {
	Date  time.Time
	Label string
}

// Markers the concept markers ordered by date
type Markers struct {
	items []Marker
}

// NewMarkers create the index from the given markers
func NewMarkers(markers ...Marker) *Markers {
	m := &Markers{items: make([]Marker, 0, len(markers))}
	for _, marker := range markers {
		m.Add(marker.Date, marker.Label)
	}
	return m
}

// Add set the label of the date, replacing the label already set on the same day
func (m *Markers) Add(date time.Time, label string) {
	date = Truncate(date)
	i := sort.Search(len(m.items), func(i int) bool { return !m.items[i].Date.Before(date) })
	if i < len(m.items) && m.items[i].Date.Equal(date) {
		m.items[i].Label = label
		return
	}

	m.items = append(m.items, Marker{})
	copy(m.items[i+1:], m.items[i:])
	m.items[i] = Marker{Date: date, Label: label}
}

// LabelFor returns the label of the latest marker not after the day.
// ok is false when every marker is later than the day.
func (m *Markers) LabelFor(day time.Time) (label string, ok bool) {
	if m == nil {
		return "", false
	}

	day = Truncate(day)
	i := sort.Search(len(m.items), func(i int) bool { return m.items[i].Date.After(day) })
	if i == 0 {
		return "", false
	}
	return m.items[i-1].Label, true
}

// Len the number of markers
func (m *Markers) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// All returns a copy of the markers in date order
func (m *Markers) All() []Marker {
	if m == nil {
		return nil
	}
	return append([]Marker(nil), m.items...)
}
