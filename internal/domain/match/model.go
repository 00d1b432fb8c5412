package match

import "time"

const (
	CompetitionLigue1   = "ligue_1"
	CompetitionCup      = "cup"
	CompetitionSuperCup = "super_cup"
	CompetitionSupercup = "supercup"
	UnresolvedID        = int64(-1)
	MissingScore        = -1
	isoKeyLayout        = "2006-01-02 15:04:05"
	dateLayout          = "2006-01-02"
	timeLayout          = "15:04:05"
)

// Record is one source row after column detection and path inference.
// Empty strings stand for null values.
type Record struct {
	MatchID        string
	Stage          string
	Status         string
	RawDate        string
	Date           *time.Time
	HomeTeamName   string
	AwayTeamName   string
	ResultHome     string
	ResultAway     string
	RegulationTime string
	Penalties      string
	Venue          string
	Capacity       string
	Competition    string
	Season         string
	SourceFile     string
	RowIndex       int
}

// DateKey is the canonical join key between a record and the date dimension.
func (r Record) DateKey() (string, bool) {
	if r.Date == nil {
		return "", false
	}
	return ISOKey(*r.Date), true
}

// Fact is one F_Match row. Foreign keys use UnresolvedID instead of null.
type Fact struct {
	MatchID        string
	DateID         int64
	HomeTeamID     int64
	AwayTeamID     int64
	CompetitionID  int64
	SeasonID       int64
	StadiumID      *int64
	Stage          string
	Status         string
	ResultHome     int
	ResultAway     int
	RegulationTime string
	Penalties      string
	Venue          string
}

// Scored reports whether both scores were parsed.
func (f Fact) Scored() bool {
	return f.ResultHome != MissingScore && f.ResultAway != MissingScore
}

func ISOKey(t time.Time) string {
	return t.Format(isoKeyLayout)
}

func DatePart(t time.Time) string {
	return t.Format(dateLayout)
}

func TimePart(t time.Time) string {
	return t.Format(timeLayout)
}
