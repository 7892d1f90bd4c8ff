package week

import "time"

// DateLayout the command line date layout (mm/dd/yyyy, leading zeros optional)
const DateLayout = "1/2/2006"

// Date returns the given calendar day at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock and the location, keeping the calendar day
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Parse parses a mm/dd/yyyy date
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return Truncate(t), nil
}

// MondayOf returns the Monday that owns the day.
// A Sunday belongs to the following week, so it maps to the next day.
func MondayOf(day time.Time) time.Time {
	day = Truncate(day)
	switch wd := day.Weekday(); wd {
	case time.Sunday:
		return day.AddDate(0, 0, 1)
	case time.Monday:
		return day
	default:
		return day.AddDate(0, 0, -int(wd-time.Monday))
	}
}
