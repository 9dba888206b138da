package meal

import (
	"time"
)

const dayKeyFormat = "2006-01-02"

// StartOfWeek returns the Monday at midnight UTC of the week containing t.
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// NormalizeDate strips the time-of-day so entries group by calendar day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
