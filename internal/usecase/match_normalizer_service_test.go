package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/repository/memory"
	rawdatamock "github.com/riskibarqy/football-warehouse/internal/mocks/domain/rawdata"
)

func TestMatchNormalizerService_NormalizeTree(t *testing.T) {
	t.Parallel()

	store := memory.NewTableStore("out")
	store.Put("data/matches/cup/cup_2018.csv", rawdata.Table{
		Columns: []string{"date", "home_team", "away_team", "home_score", "away_score", "stadium"},
		Rows: [][]string{
			{"2018-05-01", " Club Africain ", "Esperance Tunis", "1", "1", "Rades"},
		},
	})
	store.Put("data/matches/ligue_1/ligue_1_2019-2020.csv", rawdata.Table{
		Columns: []string{"id", "date", "home", "away", "result.home", "result.away"},
		Rows: [][]string{
			{"m1", "2019-08-24", "Esperance Tunis", "CS Sfaxien", "2", "0"},
			{"m1", "2019-08-31", "CS Sfaxien", "Stade Gabesien", "1", "3"},
			{"", "", "Esperance Tunis", "", "", ""},
		},
	})
	store.Put("data/matches/ligue_1/2021.csv", rawdata.Table{
		Columns: []string{"id", "home", "away"},
		Rows:    [][]string{{"x9", "A", "B"}},
	})

	service := NewMatchNormalizerService(store, nil)
	got, err := service.NormalizeTree(context.Background(), "data/matches")
	if err != nil {
		t.Fatalf("normalize tree: %v", err)
	}

	if got.FilesFound != 3 || got.FilesRead != 3 {
		t.Fatalf("unexpected file counts: found=%d read=%d", got.FilesFound, got.FilesRead)
	}
	if len(got.Records) != 5 {
		t.Fatalf("unexpected record count: %d", len(got.Records))
	}
	if got.RegeneratedIDs != 2 {
		t.Fatalf("unexpected regenerated ids: %d", got.RegeneratedIDs)
	}
	if got.NullDates != 2 {
		t.Fatalf("unexpected null dates: %d", got.NullDates)
	}
	if len(got.BareYearSeasons) != 1 || got.BareYearSeasons[0] != "2021" {
		t.Fatalf("unexpected bare year seasons: %v", got.BareYearSeasons)
	}

	cup := got.Records[0]
	if cup.MatchID != "0" || cup.Competition != "cup" || cup.Season != "2018-19" {
		t.Fatalf("unexpected cup record: %+v", cup)
	}
	if cup.HomeTeamName != "Club Africain" || cup.Venue != "Rades" || cup.ResultHome != "1" {
		t.Fatalf("unexpected cup columns: %+v", cup)
	}
	if cup.Date == nil || cup.Date.Year() != 2018 {
		t.Fatalf("expected parsed cup date, got %v", cup.Date)
	}

	bare := got.Records[1]
	if bare.Season != "2021" || bare.Competition != "ligue_1" {
		t.Fatalf("unexpected bare year record: %+v", bare)
	}

	league := got.Records[2:]
	if league[0].MatchID != "m1" || league[0].Season != "2019-20" {
		t.Fatalf("unexpected league record: %+v", league[0])
	}
	if league[1].MatchID != "ligue_1_2019-2020-1" {
		t.Fatalf("duplicate id not regenerated: %q", league[1].MatchID)
	}
	if league[2].MatchID != "ligue_1_2019-2020-2" || league[2].Date != nil || league[2].AwayTeamName != "" {
		t.Fatalf("unexpected sparse record: %+v", league[2])
	}
}

func TestMatchNormalizerService_NormalizeTree_SkipsUnreadableFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := rawdatamock.NewReader(t)
	reader.
		On("ListTables", mock.Anything, "matches", true).
		Return([]string{"matches/broken.csv", "matches/ligue_1/2020-21.csv"}, nil).
		Once()
	reader.
		On("ReadTable", mock.Anything, "matches/broken.csv").
		Return(rawdata.Table{}, errors.New("bad encoding")).
		Once()
	reader.
		On("ReadTable", mock.Anything, "matches/ligue_1/2020-21.csv").
		Return(rawdata.Table{Columns: []string{"home", "away"}, Rows: [][]string{{"A", "B"}}}, nil).
		Once()

	got, err := NewMatchNormalizerService(reader, nil).NormalizeTree(ctx, "matches")
	if err != nil {
		t.Fatalf("normalize tree: %v", err)
	}
	if got.FilesFound != 2 || got.FilesRead != 1 {
		t.Fatalf("unexpected file counts: found=%d read=%d", got.FilesFound, got.FilesRead)
	}
	if len(got.Skipped) != 1 || got.Skipped[0].Path != "matches/broken.csv" {
		t.Fatalf("unexpected skipped files: %+v", got.Skipped)
	}
	if len(got.Records) != 1 || got.Records[0].Season != "2020-21" {
		t.Fatalf("unexpected records: %+v", got.Records)
	}
}

func TestMatchNormalizerService_NormalizeTree_ListError(t *testing.T) {
	t.Parallel()

	reader := rawdatamock.NewReader(t)
	reader.
		On("ListTables", mock.Anything, "matches", true).
		Return(nil, errors.New("permission denied")).
		Once()

	_, err := NewMatchNormalizerService(reader, nil).NormalizeTree(context.Background(), "matches")
	if err == nil {
		t.Fatalf("expected list error")
	}
}

func TestMatchNormalizerService_NormalizeTree_RequiresRoot(t *testing.T) {
	t.Parallel()

	_, err := NewMatchNormalizerService(memory.NewTableStore("out"), nil).NormalizeTree(context.Background(), " ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
