package warehouse

import "time"

// Output table names, also used as CSV file stems.
const (
	TableTeam             = "D_Team_clean"
	TableCompetition      = "D_Competition_clean"
	TableSeason           = "D_Season_clean"
	TableStadium          = "D_Stadium_clean"
	TableDate             = "D_Date"
	TableTopScorerAllTime = "D_TopScorers_AllTime_clean"
	TableTopScorerSeason  = "D_TopScorers_By_Season_clean"
	TableMatch            = "F_Match"
	TableTeamSeason       = "F_Team_Season"
	TableChampions        = "D_Champions_clean"
)

// Seed file names looked up under the data directory.
const (
	SeedTeam             = "D_Team.csv"
	SeedCompetition      = "D_Competition.csv"
	SeedSeason           = "D_Season.csv"
	SeedStadium          = "D_Stadium.csv"
	SeedTopScorerAllTime = "D_TopScorers_AllTime.csv"
	SeedTopScorerSeason  = "D_TopScorers_By_Season.csv"
	SeedChampions        = "D_Champions.csv"
)

type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type NewTeam struct {
	ID   int64  `json:"id_team"`
	Name string `json:"team_name"`
}

// Report summarizes one pipeline run.
type Report struct {
	RunID                  string         `json:"run_id"`
	StartedAt              time.Time      `json:"started_at"`
	FinishedAt             time.Time      `json:"finished_at"`
	DryRun                 bool           `json:"dry_run"`
	FilesFound             int            `json:"files_found"`
	FilesRead              int            `json:"files_read"`
	SkippedFiles           []SkippedFile  `json:"skipped_files"`
	MatchRecords           int            `json:"match_records"`
	RegeneratedMatchIDs    int            `json:"regenerated_match_ids"`
	NullDates              int            `json:"null_dates"`
	DroppedSeedRows        int            `json:"dropped_seed_rows"`
	NewTeams               []NewTeam      `json:"new_teams"`
	BareYearSeasons        []string       `json:"bare_year_seasons"`
	UnresolvedCompetitions int            `json:"unresolved_competitions"`
	UnresolvedSeasons      int            `json:"unresolved_seasons"`
	UnresolvedTeams        int            `json:"unresolved_teams"`
	Rows                   map[string]int `json:"rows"`
	Outputs                []string       `json:"outputs"`
}
