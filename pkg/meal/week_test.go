package meal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeekIsAlwaysMonday(t *testing.T) {
	// two full weeks of anchors, including a Sunday
	base := time.Date(2024, 3, 4, 13, 45, 0, 0, time.UTC) // a Monday
	for i := 0; i < 14; i++ {
		d := base.AddDate(0, 0, i)
		start := StartOfWeek(d)

		assert.Equal(t, time.Monday, start.Weekday(), "anchor %s", d)
		assert.False(t, start.After(d), "start must not be after anchor %s", d)
		assert.True(t, d.Before(start.AddDate(0, 0, 7)), "anchor %s must fall inside the week", d)
	}
}

func TestStartOfWeekSundayMapsBack(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	start := StartOfWeek(sunday)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), start)
}

func TestNormalizeDate(t *testing.T) {
	d := time.Date(2024, 3, 15, 18, 30, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), NormalizeDate(d))
}
