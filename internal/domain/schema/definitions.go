package schema

// Table declares the expected columns of one warehouse table.
type Table struct {
	Name     string
	All      []string
	Required []string
}

// Definitions returns the warehouse schema contract in declaration order.
func Definitions() []Table {
	return []Table{
		{
			Name:     "D_Stadium",
			All:      []string{"id_stadium", "stadium_name", "capacity"},
			Required: []string{"stadium_name"},
		},
		{
			Name:     "D_Team",
			All:      []string{"id_team", "team_name", "id_city", "location"},
			Required: []string{"team_name"},
		},
		{
			Name:     "D_Season",
			All:      []string{"season_id", "season", "start_year", "end_year", "beforeafterindependence"},
			Required: []string{"season"},
		},
		{
			Name:     "D_Competition",
			All:      []string{"id_competition", "competition"},
			Required: []string{"competition"},
		},
		{
			Name:     "D_Date",
			All:      []string{"id_date", "date", "time", "year", "month", "day"},
			Required: []string{"date"},
		},
		{
			Name:     "D_Player",
			All:      []string{"id_player", "player_name", "birth_date", "nationality", "market_value"},
			Required: []string{"player_name"},
		},
		{
			Name:     "D_Position",
			All:      []string{"id_position", "position_name"},
			Required: []string{"position_name"},
		},
		{
			Name:     "D_City",
			All:      []string{"id_city", "city_name", "latitude", "longitude"},
			Required: []string{"city_name"},
		},
		{
			Name:     "F_Champions",
			All:      []string{"season_id", "competition_id", "winner_id", "runnerup_id", "score"},
			Required: []string{"season_id", "competition_id", "winner_id"},
		},
		{
			Name:     "F_Team_Player_Season",
			All:      []string{"season_id", "id_team", "id_player", "number", "id_position"},
			Required: []string{"season_id", "id_team", "id_player"},
		},
		{
			Name:     "F_Match",
			All:      []string{"id_match", "id_date", "id_home_team", "id_away_team", "id_competition", "season_id", "id_stadium", "result_home", "result_away", "penalties"},
			Required: []string{"id_home_team", "id_away_team", "id_competition", "season_id"},
		},
		{
			Name:     "F_TopScorers_AllTime",
			All:      []string{"id_player", "goals"},
			Required: []string{"id_player"},
		},
		{
			Name:     "F_TopScorers_By_Season",
			All:      []string{"season_id", "id_player", "goals"},
			Required: []string{"season_id", "id_player", "goals"},
		},
	}
}

// Lookup finds a declared table by exact name.
func Lookup(defs []Table, name string) (Table, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}
	return Table{}, false
}
