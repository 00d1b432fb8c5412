package match

// Field names a NormalizedMatch attribute detected from source headers.
type Field string

const (
	FieldID             Field = "id"
	FieldStage          Field = "stage"
	FieldStatus         Field = "status"
	FieldDate           Field = "date"
	FieldHome           Field = "home"
	FieldAway           Field = "away"
	FieldResultHome     Field = "result_home"
	FieldResultAway     Field = "result_away"
	FieldRegulationTime Field = "regulation_time"
	FieldPenalties      Field = "penalties"
	FieldVenue          Field = "venue"
	FieldCapacity       Field = "capacity"
)

// Fields lists every detected attribute in resolution order.
var Fields = []Field{
	FieldID,
	FieldStage,
	FieldStatus,
	FieldDate,
	FieldHome,
	FieldAway,
	FieldResultHome,
	FieldResultAway,
	FieldRegulationTime,
	FieldPenalties,
	FieldVenue,
	FieldCapacity,
}

// ColumnAliases holds the ranked header candidates per field. Entries are
// kept verbatim, including the dotted forms that normalized headers never
// carry and the repeated trailing entries.
var ColumnAliases = map[Field][]string{
	FieldID:             {"matchid", "id_match", "id", "match_id"},
	FieldStage:          {"stage", "round", "phase"},
	FieldStatus:         {"status", "state"},
	FieldDate:           {"date", "match_date", "kickoff"},
	FieldHome:           {"home_name", "home.name", "home", "home_team", "home.name"},
	FieldAway:           {"away_name", "away.name", "away", "away_team", "away.name"},
	FieldResultHome:     {"result_home", "result.home", "home_score", "result.home"},
	FieldResultAway:     {"result_away", "result.away", "away_score", "result.away"},
	FieldRegulationTime: {"result_regulationtime", "result_regulation_time", "regulation_time", "result_regulationtime", "result_regulation"},
	FieldPenalties:      {"result_penalties", "result.penalties", "penalties"},
	FieldVenue:          {"information_venue", "information.venue", "venue", "stadium", "stadium_name"},
	FieldCapacity:       {"information_capacity", "information.capacity", "capacity", "stadium_capacity"},
}
