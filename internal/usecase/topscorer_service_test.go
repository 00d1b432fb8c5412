package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-warehouse/internal/domain/dimension"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/rawdata"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-warehouse/internal/platform/namematch"
)

func scorerTeams() team.Dimension {
	return team.Dimension{Teams: []team.Team{
		{ID: 3, Name: "Club Africain"},
		{ID: 10, Name: "Esperance Tunis"},
	}}
}

func TestTopScorerService_Load(t *testing.T) {
	t.Parallel()

	store := memory.NewTableStore("out")
	store.Put("data/D_TopScorers_AllTime.csv", rawdata.Table{
		Columns: []string{"name", "team", "goals"},
		Rows: [][]string{
			{"Player A", "Tunisia Club Africain", "12"},
			{"Player B", "Esperance Tunis (80), Club Africain (12)", "x"},
			{"Player C", "", ""},
			{"Player D", "Unknown FC", "4"},
		},
	})
	store.Put("data/D_TopScorers_By_Season.csv", rawdata.Table{
		Columns: []string{"season", "name", "team", "goals"},
		Rows: [][]string{
			{"2019-20", "Player A", "Club Africain", "9"},
			{"1999-00", "Player E", "Esperance Tunis", "7"},
		},
	})

	seasons := dimension.Seasons{Items: []dimension.Season{{ID: 5, Name: "2019-20"}}}
	service := NewTopScorerService(store, namematch.NewTopScorerResolver(nil), nil)
	got := service.Load(context.Background(), "data", scorerTeams(), seasons)

	require.True(t, got.HasAllTime)
	require.Len(t, got.AllTime, 4)
	require.Equal(t, int64(1), got.AllTime[0].ID)
	require.Equal(t, int64(3), got.AllTime[0].TeamID)
	require.Equal(t, 12, got.AllTime[0].Goals)
	require.Equal(t, int64(10), got.AllTime[1].TeamID)
	require.Equal(t, 0, got.AllTime[1].Goals)
	require.Equal(t, match.UnresolvedID, got.AllTime[2].TeamID)
	require.Equal(t, match.UnresolvedID, got.AllTime[3].TeamID)

	require.True(t, got.HasBySeason)
	require.Len(t, got.BySeason, 2)
	require.Equal(t, int64(5), got.BySeason[0].SeasonID)
	require.Equal(t, int64(3), got.BySeason[0].TeamID)
	require.Equal(t, match.UnresolvedID, got.BySeason[1].SeasonID)
	require.Empty(t, got.Skipped)
}

func TestTopScorerService_Load_PrefersSourceTeamID(t *testing.T) {
	t.Parallel()

	store := memory.NewTableStore("out")
	store.Put("data/D_TopScorers_AllTime.csv", rawdata.Table{
		Columns: []string{"player_name", "id_team", "goals"},
		Rows:    [][]string{{"Player A", "42", "3"}, {"Player B", "-1", "1"}},
	})

	got := NewTopScorerService(store, nil, nil).Load(context.Background(), "data", scorerTeams(), dimension.Seasons{})
	require.Equal(t, int64(42), got.AllTime[0].TeamID)
	require.Equal(t, match.UnresolvedID, got.AllTime[1].TeamID, "no team name column to fall back to")
	require.False(t, got.HasBySeason)
}

func TestResolveScorerColumns_TeamIDShadowsTeamName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    scorerColumns
	}{
		{
			name:    "exact team name wins",
			headers: []string{"name", "id_team", "team_name", "goals"},
			want:    scorerColumns{name: 0, goals: 3, team: 2, teamID: 1},
		},
		{
			name:    "substring on id_team drops the name column",
			headers: []string{"name", "id_team", "goals", "club_team_name"},
			want:    scorerColumns{name: 0, goals: 2, team: -1, teamID: 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, resolveScorerColumns(tc.headers))
		})
	}
}
