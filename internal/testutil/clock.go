package testutil

import "time"

const leagueTimezone = "America/New_York"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// InLeagueTime builds a wall-clock time in the league's home timezone.
// Panics when tzdata is missing; intended for tests.
func InLeagueTime(year int, month time.Month, day, hour int) time.Time {
	loc, err := time.LoadLocation(leagueTimezone)
	if err != nil {
		panic(err)
	}
	return time.Date(year, month, day, hour, 0, 0, 0, loc)
}
