package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-warehouse/internal/domain/dimension"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/platform/namematch"
)

type MatchFactService struct {
	resolver *namematch.Resolver
	logger   *logging.Logger
}

func NewMatchFactService(resolver *namematch.Resolver, logger *logging.Logger) *MatchFactService {
	if resolver == nil {
		resolver = namematch.NewTeamResolver(nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchFactService{
		resolver: resolver,
		logger:   logger,
	}
}

type FactResult struct {
	Facts                  []match.Fact
	NewTeams               []team.Team
	UnresolvedCompetitions int
	UnresolvedSeasons      int
	UnresolvedTeams        int
}

// Build resolves every record against dims in two phases. Phase one collects
// the team names nothing in the dimension matches and appends them, sorted,
// to dims.Teams. Phase two resolves all records against the closed
// dimension, so only null names end up with an unresolved team id.
func (s *MatchFactService) Build(ctx context.Context, records []match.Record, dims *Dimensions) FactResult {
	var result FactResult

	idx := teamIndex(dims.Teams)
	missing := make(map[string]struct{})
	for _, r := range records {
		for _, name := range []string{r.HomeTeamName, r.AwayTeamName} {
			if id, matched := s.resolver.Resolve(name, idx); id == namematch.Unresolved && matched != "" {
				missing[matched] = struct{}{}
			}
		}
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)

		result.NewTeams = dims.Teams.Extend(names)
		for _, t := range result.NewTeams {
			s.logger.InfoContext(ctx, "team added to dimension", "id_team", t.ID, "team_name", t.Name)
		}
		idx = teamIndex(dims.Teams)
	}

	dateIDs := dimension.DateIDs(dims.Dates)
	competitionIDs := dimension.CompetitionIDs(dims.Competitions)
	seasonIDs := dimension.SeasonIDs(dims.Seasons)
	stadiumByTeam := make(map[int64]*int64, len(dims.Teams.Teams))
	for _, t := range dims.Teams.Teams {
		if _, exists := stadiumByTeam[t.ID]; !exists {
			stadiumByTeam[t.ID] = t.StadiumID
		}
	}

	result.Facts = make([]match.Fact, 0, len(records))
	for _, r := range records {
		f := match.Fact{
			MatchID:        r.MatchID,
			DateID:         match.UnresolvedID,
			CompetitionID:  match.UnresolvedID,
			SeasonID:       match.UnresolvedID,
			Stage:          r.Stage,
			Status:         r.Status,
			ResultHome:     match.ParseScore(r.ResultHome),
			ResultAway:     match.ParseScore(r.ResultAway),
			RegulationTime: r.RegulationTime,
			Penalties:      r.Penalties,
			Venue:          r.Venue,
		}

		if key, ok := r.DateKey(); ok {
			if id, ok := dateIDs[key]; ok {
				f.DateID = id
			}
		}
		f.HomeTeamID, _ = s.resolver.Resolve(r.HomeTeamName, idx)
		f.AwayTeamID, _ = s.resolver.Resolve(r.AwayTeamName, idx)
		if f.HomeTeamID == namematch.Unresolved || f.AwayTeamID == namematch.Unresolved {
			result.UnresolvedTeams++
		}

		if id, ok := competitionIDs[r.Competition]; ok {
			f.CompetitionID = id
		} else {
			result.UnresolvedCompetitions++
		}
		if id, ok := seasonIDs[r.Season]; ok {
			f.SeasonID = id
		} else {
			result.UnresolvedSeasons++
		}

		if f.HomeTeamID != namematch.Unresolved {
			if stadium := stadiumByTeam[f.HomeTeamID]; stadium != nil {
				id := *stadium
				f.StadiumID = &id
			}
		}

		result.Facts = append(result.Facts, f)
	}

	if result.UnresolvedCompetitions > 0 || result.UnresolvedSeasons > 0 {
		s.logger.WarnContext(ctx, "facts with unresolved joins",
			"competitions", result.UnresolvedCompetitions,
			"seasons", result.UnresolvedSeasons,
		)
	}
	s.logger.InfoContext(ctx, "match facts built",
		"facts", len(result.Facts),
		"new_teams", len(result.NewTeams),
		"unresolved_teams", result.UnresolvedTeams,
	)

	return result
}

func teamIndex(d team.Dimension) *namematch.Index {
	entries := make([]namematch.Entry, 0, len(d.Teams))
	for _, t := range d.Teams {
		entries = append(entries, namematch.Entry{Name: t.Name, ID: t.ID})
	}
	return namematch.NewIndex(entries)
}
