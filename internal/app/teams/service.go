package teams

import "github.com/preston-bernstein/nba-stats-service/internal/domain/teams"

// Store defines the contract for reading the team catalog.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
}

// Service serves teams from the static catalog. No upstream call is made.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns every team in the catalog.
func (s *Service) Teams() []teams.Team {
	items := s.store.ListTeams()
	if items == nil {
		return []teams.Team{}
	}
	return items
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id int) (teams.Team, bool) {
	return s.store.GetTeam(id)
}
