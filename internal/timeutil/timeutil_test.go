package timeutil

import (
	"testing"
	"time"
)

func TestFormatDateFollowsLocation(t *testing.T) {
	utc := time.Date(2024, 11, 5, 3, 0, 0, 0, time.UTC)
	if got := FormatDate(utc); got != "2024-11-05" {
		t.Fatalf("expected UTC date, got %s", got)
	}
	if got := FormatDate(utc.In(ResolveLocation("America/New_York"))); got != "2024-11-04" {
		t.Fatalf("expected eastern date, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestResolveLocation(t *testing.T) {
	if loc := ResolveLocation(""); loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v", loc)
	}
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("expected UTC for unknown zone, got %v", loc)
	}
	if loc := ResolveLocation("America/New_York"); loc.String() != "America/New_York" {
		t.Fatalf("expected New York location, got %v", loc)
	}
}
