package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/teamseason"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type TeamSeasonService struct {
	logger *logging.Logger
}

func NewTeamSeasonService(logger *logging.Logger) *TeamSeasonService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TeamSeasonService{logger: logger}
}

type teamSeasonKey struct {
	seasonID int64
	teamID   int64
}

// Aggregate groups home and away lines by (season, team). Output is ordered
// by season id then team id.
func (s *TeamSeasonService) Aggregate(ctx context.Context, facts []match.Fact) []teamseason.Stat {
	stats := make(map[teamSeasonKey]*teamseason.Stat)
	for _, f := range facts {
		for _, line := range teamseason.Lines(f) {
			key := teamSeasonKey{seasonID: line.SeasonID, teamID: line.TeamID}
			stat, ok := stats[key]
			if !ok {
				stat = &teamseason.Stat{SeasonID: line.SeasonID, TeamID: line.TeamID}
				stats[key] = stat
			}
			stat.Add(line)
		}
	}

	out := make([]teamseason.Stat, 0, len(stats))
	for _, stat := range stats {
		stat.Finalize()
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonID != out[j].SeasonID {
			return out[i].SeasonID < out[j].SeasonID
		}
		return out[i].TeamID < out[j].TeamID
	})

	s.logger.InfoContext(ctx, "team season records generated", "rows", len(out))
	return out
}
