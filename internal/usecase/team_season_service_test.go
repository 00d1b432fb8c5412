package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
)

func TestTeamSeasonService_Aggregate(t *testing.T) {
	t.Parallel()

	facts := []match.Fact{
		{MatchID: "1", SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, ResultHome: 2, ResultAway: 1},
		{MatchID: "2", SeasonID: 1, HomeTeamID: 2, AwayTeamID: 1, ResultHome: 0, ResultAway: 0},
		{MatchID: "3", SeasonID: 1, HomeTeamID: 1, AwayTeamID: 2, ResultHome: match.MissingScore, ResultAway: match.MissingScore},
		{MatchID: "4", SeasonID: match.UnresolvedID, HomeTeamID: 1, AwayTeamID: 2, ResultHome: 5, ResultAway: 0},
		{MatchID: "5", SeasonID: 1, HomeTeamID: 1, AwayTeamID: match.UnresolvedID, ResultHome: 3, ResultAway: 0},
	}

	got := NewTeamSeasonService(nil).Aggregate(context.Background(), facts)
	if len(got) != 2 {
		t.Fatalf("unexpected stat count: %d", len(got))
	}

	a, b := got[0], got[1]
	if a.TeamID != 1 || b.TeamID != 2 {
		t.Fatalf("stats not ordered by team id: %d, %d", a.TeamID, b.TeamID)
	}
	if a.MatchesTotal != 4 || a.MatchesHome != 3 || a.MatchesAway != 1 {
		t.Fatalf("unexpected match counts for team 1: %+v", a)
	}
	if a.Wins != 2 || a.Draws != 1 || a.Losses != 0 || a.Points != 7 {
		t.Fatalf("unexpected results for team 1: %+v", a)
	}
	if a.GoalsFor != 5 || a.GoalsAgainst != 1 || a.GoalsDiff != 4 {
		t.Fatalf("unexpected goals for team 1: %+v", a)
	}
	if got := a.GoalsPerMatch.StringFixed(2); got != "1.25" {
		t.Fatalf("unexpected goals per match: %s", got)
	}

	if b.MatchesTotal != 3 || b.Losses != 1 || b.Draws != 1 || b.Points != 1 {
		t.Fatalf("unexpected results for team 2: %+v", b)
	}
	if b.GoalsFor != 1 || b.GoalsAgainst != 2 {
		t.Fatalf("unexpected goals for team 2: %+v", b)
	}
	if got := b.GoalsPerMatch.StringFixed(2); got != "0.33" {
		t.Fatalf("unexpected goals per match: %s", got)
	}
	if got := b.GoalsAgainstPerMatch.StringFixed(2); got != "0.67" {
		t.Fatalf("unexpected goals against per match: %s", got)
	}
}

func TestTeamSeasonService_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	if got := NewTeamSeasonService(nil).Aggregate(context.Background(), nil); len(got) != 0 {
		t.Fatalf("expected no stats, got %d", len(got))
	}
}
