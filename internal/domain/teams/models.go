package teams

// Team is a franchise record from the static team catalog.
type Team struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	Nickname     string `json:"nickname"`
	City         string `json:"city"`
	State        string `json:"state"`
	YearFounded  int    `json:"year_founded"`
}
