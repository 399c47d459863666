package league

// Season identifies a league season such as 2024-25.
type Season struct {
	Season    string `json:"season"`
	StartYear int    `json:"start_year"`
}

// SeasonsResponse lists known seasons newest first.
type SeasonsResponse struct {
	Current string   `json:"current"`
	Seasons []Season `json:"seasons"`
}
