package config

// DefaultsConfig holds the query defaults applied when a caller omits them.
// An empty Season means "derive the current season at request time".
type DefaultsConfig struct {
	Season   string
	LeagueID string
	Timezone string
}

func loadDefaults() DefaultsConfig {
	return DefaultsConfig{
		Season:   envOrDefault(envDefaultSeason, ""),
		LeagueID: envOrDefault(envDefaultLeague, defaultLeagueID),
		Timezone: envOrDefault(envTimezone, defaultTimezone),
	}
}
