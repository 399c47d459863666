package players

import (
	"strconv"
	"strings"
)

// Player represents an active player as listed by the stats API.
type Player struct {
	ID               int    `json:"id"`
	FullName         string `json:"full_name"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	IsActive         bool   `json:"is_active"`
	TeamID           int    `json:"team_id"`
	TeamAbbreviation string `json:"team_abbreviation"`
	TeamCity         string `json:"team_city"`
	TeamName         string `json:"team_name"`
}

// OnTeam reports whether the player's team id matches the raw query value.
func (p Player) OnTeam(teamID string) bool {
	return strconv.Itoa(p.TeamID) == teamID
}

// NameContains reports whether the full name contains fragment, ignoring case.
func (p Player) NameContains(fragment string) bool {
	return strings.Contains(strings.ToLower(p.FullName), strings.ToLower(fragment))
}

// SplitLastFirst splits "James, LeBron" into first and last names.
func SplitLastFirst(lastFirst string) (first, last string) {
	last, first, found := strings.Cut(lastFirst, ",")
	if !found {
		return "", strings.TrimSpace(lastFirst)
	}
	return strings.TrimSpace(first), strings.TrimSpace(last)
}
