package week

import (
	"iter"
	"time"
)

// Weeks yields the Mondays from the week of first through last.
// last is compared as given. Ranging over the sequence again restarts the walk.
func Weeks(first, last time.Time) iter.Seq[time.Time] {
	start := MondayOf(first)
	end := Truncate(last)
	return func(yield func(time.Time) bool) {
		for current := start; !current.After(end); current = current.AddDate(0, 0, 7) {
			if !yield(current) {
				return
			}
		}
	}
}

// Count the number of Mondays Weeks yields
func Count(first, last time.Time) int {
	n := 0
	for range Weeks(first, last) {
		n++
	}
	return n
}
