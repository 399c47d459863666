package timeutil

import "time"

// DateLayout is the YYYY-MM-DD form used by every date query parameter.
const DateLayout = "2006-01-02"

// FormatDate renders t's calendar date in t's own location, so callers must
// convert to the league timezone first.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ResolveLocation loads the IANA zone name, falling back to UTC when the name
// is blank or tzdata does not know it.
func ResolveLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}
