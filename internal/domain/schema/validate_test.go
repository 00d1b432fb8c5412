package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TeamWithExtraColumn(t *testing.T) {
	t.Parallel()

	def, ok := Lookup(Definitions(), "D_Team")
	require.True(t, ok)

	res := Validate([]string{"id_team", "Team_Name", "location", "stadium_id"}, def)
	assert.True(t, res.OK)
	assert.Empty(t, res.MissingRequired)
	assert.Equal(t, []string{"stadium_id"}, res.UnexpectedExtra)
}

func TestValidate_MissingRequired(t *testing.T) {
	t.Parallel()

	def, ok := Lookup(Definitions(), "F_Match")
	require.True(t, ok)

	res := Validate([]string{"id_match", "id_home_team", "season_id"}, def)
	assert.False(t, res.OK)
	assert.Equal(t, []string{"id_away_team", "id_competition"}, res.MissingRequired)
	assert.Empty(t, res.UnexpectedExtra)
}

func TestGuessTable(t *testing.T) {
	t.Parallel()

	defs := Definitions()
	tests := []struct {
		file    string
		want    string
		wantErr bool
	}{
		{file: "D_Team_clean.csv", want: "D_Team"},
		{file: "d_stadium_clean.csv", want: "D_Stadium"},
		{file: "D_Date.csv", want: "D_Date"},
		{file: "F_Match.csv", want: "F_Match"},
		{file: "F_Champions.csv", want: "F_Champions"},
		{file: "F_Team_Season.csv", wantErr: true},
		{file: "D_TopScorers_AllTime_clean.csv", wantErr: true},
		{file: "notes.csv", wantErr: true},
	}

	for _, tc := range tests {
		got, err := GuessTable(tc.file, defs)
		if tc.wantErr {
			require.Error(t, err, tc.file)
			assert.True(t, errors.Is(err, ErrUnknownTable))
			continue
		}
		require.NoError(t, err, tc.file)
		assert.Equal(t, tc.want, got.Name, tc.file)
	}
}

func TestDefinitions_RequiredSubsetOfAll(t *testing.T) {
	t.Parallel()

	for _, def := range Definitions() {
		all := make(map[string]struct{}, len(def.All))
		for _, col := range def.All {
			all[col] = struct{}{}
		}
		for _, col := range def.Required {
			_, ok := all[col]
			assert.True(t, ok, "%s: required %s not declared", def.Name, col)
		}
	}
}
