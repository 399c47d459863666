package timeutil

import (
	"testing"
	"time"
)

func TestCurrentSeason(t *testing.T) {
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(1999, time.November, 2, 0, 0, 0, 0, time.UTC), "1999-00"},
	}
	for _, tc := range cases {
		if got := CurrentSeason(tc.at); got != tc.want {
			t.Fatalf("CurrentSeason(%s) expected %s, got %s", tc.at.Format(DateLayout), tc.want, got)
		}
	}
}

func TestSeasonLabel(t *testing.T) {
	if got := SeasonLabel(1946); got != "1946-47" {
		t.Fatalf("expected 1946-47, got %s", got)
	}
	if got := SeasonLabel(2009); got != "2009-10" {
		t.Fatalf("expected 2009-10, got %s", got)
	}
}
