package store

import (
	_ "embed"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

//go:embed data/teams.json
var bundledTeams []byte

// TeamCatalog is the read-only franchise list shipped with the binary.
// It is built once and never mutated, so it is safe for concurrent use.
type TeamCatalog struct {
	ordered []teams.Team
	byID    map[int]teams.Team
}

// NewTeamCatalog loads the bundled franchise list.
func NewTeamCatalog() (*TeamCatalog, error) {
	return parseTeamCatalog(bundledTeams)
}

func parseTeamCatalog(raw []byte) (*TeamCatalog, error) {
	var items []teams.Team
	if err := jsoniter.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("load team catalog: %w", err)
	}

	byID := make(map[int]teams.Team, len(items))
	for _, t := range items {
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("load team catalog: duplicate team id %d", t.ID)
		}
		byID[t.ID] = t
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &TeamCatalog{ordered: items, byID: byID}, nil
}

// ListTeams returns a copy of the catalog ordered by id.
func (c *TeamCatalog) ListTeams() []teams.Team {
	out := make([]teams.Team, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// GetTeam looks a team up by id.
func (c *TeamCatalog) GetTeam(id int) (teams.Team, bool) {
	t, ok := c.byID[id]
	return t, ok
}
