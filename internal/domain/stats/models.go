package stats

import "encoding/json"

// Response mirrors the envelope returned by stats.nba.com endpoints.
// Most endpoints return resultSets; a few return a single resultSet.
type Response struct {
	Resource   string          `json:"resource"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	ResultSets []ResultSet     `json:"resultSets,omitempty"`
	ResultSet  *ResultSet      `json:"resultSet,omitempty"`
}

// ResultSet is a named table: one header row plus value rows.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Row is a single result-set row keyed by header.
type Row map[string]any

// NormalizedDict maps result-set names to their rows.
type NormalizedDict map[string][]Row

// Sets returns the result sets regardless of which envelope field carried them.
func (r Response) Sets() []ResultSet {
	if len(r.ResultSets) > 0 {
		return r.ResultSets
	}
	if r.ResultSet != nil {
		return []ResultSet{*r.ResultSet}
	}
	return nil
}

// Normalize converts every result set into header-keyed rows.
func (r Response) Normalize() NormalizedDict {
	sets := r.Sets()
	out := make(NormalizedDict, len(sets))
	for _, set := range sets {
		out[set.Name] = set.Rows()
	}
	return out
}

// FirstRows returns the rows of the first result set, or an empty slice.
func (r Response) FirstRows() []Row {
	sets := r.Sets()
	if len(sets) == 0 {
		return []Row{}
	}
	return sets[0].Rows()
}

// RowsFor returns the rows of the named result set.
func (r Response) RowsFor(name string) ([]Row, bool) {
	for _, set := range r.Sets() {
		if set.Name == name {
			return set.Rows(), true
		}
	}
	return nil, false
}

// Rows zips headers with each row. Short rows get nil for the missing columns.
func (s ResultSet) Rows() []Row {
	rows := make([]Row, 0, len(s.RowSet))
	for _, raw := range s.RowSet {
		row := make(Row, len(s.Headers))
		for i, header := range s.Headers {
			if i < len(raw) {
				row[header] = raw[i]
			} else {
				row[header] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// String returns the row value for key as a string when it holds one.
func (r Row) String(key string) (string, bool) {
	switch v := r[key].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}
