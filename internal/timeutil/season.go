package timeutil

import (
	"fmt"
	"time"
)

// seasonStartMonth is the month a new NBA season begins.
const seasonStartMonth = time.October

// CurrentSeason returns the season label (e.g. 2024-25) in effect at t.
func CurrentSeason(t time.Time) string {
	return SeasonLabel(SeasonStartYear(t))
}

// SeasonStartYear returns the calendar year in which the season at t began.
func SeasonStartYear(t time.Time) int {
	if t.Month() >= seasonStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// SeasonLabel formats a start year as YYYY-YY.
func SeasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}
