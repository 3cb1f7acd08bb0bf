package league_test

import (
	"testing"

	"pitchside/internal/database"
	"pitchside/internal/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) league.Store {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return league.New(db)
}

func registerPlayer(t *testing.T, s league.Store, id, name string) {
	t.Helper()
	err := s.UpsertPlayer(league.Player{
		ID:           id,
		GuildID:      "G1",
		Name:         name,
		RegisteredAt: 1700000000,
	})
	require.NoError(t, err)
}

func TestUpsertPlayer(t *testing.T) {
	s := setupTestDB(t)

	err := s.UpsertPlayer(league.Player{
		ID:           "U1",
		GuildID:      "G1",
		Name:         "Sam Whitaker",
		Position:     "striker",
		JerseyNumber: 9,
		RegisteredAt: 1700000000,
	})
	require.NoError(t, err)
	assert.True(t, s.IsKnownPlayer("U1"))
	assert.False(t, s.IsKnownPlayer("U2"))

	// Re-registering updates details instead of failing.
	err = s.UpsertPlayer(league.Player{
		ID:           "U1",
		GuildID:      "G1",
		Name:         "Sam Whitaker",
		Position:     "keeper",
		JerseyNumber: 1,
		RegisteredAt: 1700000000,
	})
	require.NoError(t, err)

	p, err := s.GetPlayer("U1")
	require.NoError(t, err)
	assert.Equal(t, "keeper", p.Position)
	assert.Equal(t, 1, p.JerseyNumber)
}

func TestGetPlayerNotFound(t *testing.T) {
	s := setupTestDB(t)

	_, err := s.GetPlayer("missing")
	assert.Error(t, err)
}

func TestCreateTeam(t *testing.T) {
	s := setupTestDB(t)

	team := league.Team{ID: "T1", GuildID: "G1", Name: "River Ravens", Tag: "RAV", CreatedAt: 1700000000}
	require.NoError(t, s.CreateTeam(team))

	// Duplicate names in the same guild are rejected, case-insensitively.
	err := s.CreateTeam(league.Team{ID: "T2", GuildID: "G1", Name: "river ravens", CreatedAt: 1700000000})
	assert.Error(t, err)

	// The same name in another guild is fine.
	err = s.CreateTeam(league.Team{ID: "T3", GuildID: "G2", Name: "River Ravens", CreatedAt: 1700000000})
	assert.NoError(t, err)

	got, err := s.GetTeam("T1")
	require.NoError(t, err)
	assert.Equal(t, "River Ravens", got.Name)
	assert.Equal(t, "RAV", got.Tag)
}

func TestGetTeamByName(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "T1", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))
	require.NoError(t, s.CreateTeam(league.Team{ID: "T2", GuildID: "G1", Name: "Dockside United", CreatedAt: 1}))

	exact, err := s.GetTeamByName("G1", "river ravens")
	require.NoError(t, err)
	assert.Equal(t, "T1", exact.ID)

	fuzzy, err := s.GetTeamByName("G1", "ravens")
	require.NoError(t, err)
	assert.Equal(t, "T1", fuzzy.ID)

	_, err = s.GetTeamByName("G1", "wanderers")
	assert.Error(t, err)
}

func TestRoster(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "T1", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))
	registerPlayer(t, s, "U1", "Alice")
	registerPlayer(t, s, "U2", "Bob")

	require.NoError(t, s.AddToRoster("T1", "U1"))
	require.NoError(t, s.AddToRoster("T1", "U2"))
	// Adding twice is a no-op.
	require.NoError(t, s.AddToRoster("T1", "U1"))

	roster, err := s.GetRoster("T1")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Alice", roster[0].Name)
	assert.Equal(t, "Bob", roster[1].Name)

	require.NoError(t, s.RemoveFromRoster("T1", "U2"))
	roster, err = s.GetRoster("T1")
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	// Removing a player who isn't on the roster reports an error.
	assert.Error(t, s.RemoveFromRoster("T1", "U2"))
}

func TestDisbandTeamCascades(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "T1", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))
	registerPlayer(t, s, "U1", "Alice")
	require.NoError(t, s.AddToRoster("T1", "U1"))

	require.NoError(t, s.DisbandTeam("T1"))

	_, err := s.GetTeam("T1")
	assert.Error(t, err)
	roster, err := s.GetRoster("T1")
	require.NoError(t, err)
	assert.Empty(t, roster)
	// The player record itself survives.
	assert.True(t, s.IsKnownPlayer("U1"))

	assert.Error(t, s.DisbandTeam("T1"))
}

func TestListTeams(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "T1", GuildID: "G1", Name: "Zebras", CreatedAt: 1}))
	require.NoError(t, s.CreateTeam(league.Team{ID: "T2", GuildID: "G1", Name: "Aardvarks", CreatedAt: 1}))
	require.NoError(t, s.CreateTeam(league.Team{ID: "T3", GuildID: "G2", Name: "Badgers", CreatedAt: 1}))

	teams, err := s.ListTeams("G1")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Aardvarks", teams[0].Name)
	assert.Equal(t, "Zebras", teams[1].Name)
}

func TestRecordGameResult(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "HOME", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))
	require.NoError(t, s.CreateTeam(league.Team{ID: "AWAY", GuildID: "G1", Name: "Dockside United", CreatedAt: 1}))
	registerPlayer(t, s, "U1", "Alice")
	registerPlayer(t, s, "U2", "Bob")
	registerPlayer(t, s, "U3", "Carol")
	require.NoError(t, s.AddToRoster("HOME", "U1"))
	require.NoError(t, s.AddToRoster("HOME", "U2"))
	require.NoError(t, s.AddToRoster("AWAY", "U3"))

	err := s.RecordGameResult(league.GameOutcome{
		HomeTeamID: "HOME", AwayTeamID: "AWAY",
		HomeScore: 3, AwayScore: 1,
	})
	require.NoError(t, err)

	alice, err := s.GetPlayerStatsByName("G1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, alice.GamesPlayed)
	assert.Equal(t, 1, alice.GamesWon)
	assert.Equal(t, 3, alice.GoalsFor)
	assert.Equal(t, 1, alice.GoalsAgainst)
	assert.Equal(t, 100.0, alice.WinPercentage)

	carol, err := s.GetPlayerStatsByName("G1", "Carol")
	require.NoError(t, err)
	assert.Equal(t, 1, carol.GamesLost)
	assert.Equal(t, 1, carol.GoalsFor)
	assert.Equal(t, 3, carol.GoalsAgainst)

	// A draw increments games_drawn on both sides.
	err = s.RecordGameResult(league.GameOutcome{
		HomeTeamID: "HOME", AwayTeamID: "AWAY",
		HomeScore: 2, AwayScore: 2,
	})
	require.NoError(t, err)

	alice, err = s.GetPlayerStatsByName("G1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 2, alice.GamesPlayed)
	assert.Equal(t, 1, alice.GamesDrawn)
	assert.Equal(t, 50.0, alice.WinPercentage)
}

func TestGetLeaderboard(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.CreateTeam(league.Team{ID: "HOME", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))
	require.NoError(t, s.CreateTeam(league.Team{ID: "AWAY", GuildID: "G1", Name: "Dockside United", CreatedAt: 1}))
	registerPlayer(t, s, "U1", "Alice")
	registerPlayer(t, s, "U2", "Bob")
	require.NoError(t, s.AddToRoster("HOME", "U1"))
	require.NoError(t, s.AddToRoster("AWAY", "U2"))

	require.NoError(t, s.RecordGameResult(league.GameOutcome{
		HomeTeamID: "HOME", AwayTeamID: "AWAY",
		HomeScore: 2, AwayScore: 0,
	}))

	board, err := s.GetLeaderboard("G1")
	require.NoError(t, err)
	require.Len(t, board, 2)
	// Winner first.
	assert.Equal(t, "Alice", board[0].PlayerName)
	assert.Equal(t, 1, board[0].GamesWon)
	assert.Equal(t, "Bob", board[1].PlayerName)
	assert.Equal(t, 0, board[1].GamesWon)
}

func TestGetPlayerStatsByNameFuzzy(t *testing.T) {
	s := setupTestDB(t)
	registerPlayer(t, s, "U1", "Sam Whitaker")

	// A player with no recorded games still gets a zeroed row back.
	stat, err := s.GetPlayerStatsByName("G1", "sam")
	require.NoError(t, err)
	assert.Equal(t, "Sam Whitaker", stat.PlayerName)
	assert.Equal(t, 0, stat.GamesPlayed)

	_, err = s.GetPlayerStatsByName("G1", "nobody")
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	s := setupTestDB(t)
	registerPlayer(t, s, "U1", "Alice")
	require.NoError(t, s.CreateTeam(league.Team{ID: "T1", GuildID: "G1", Name: "River Ravens", CreatedAt: 1}))

	s.Clear()

	assert.False(t, s.IsKnownPlayer("U1"))
	_, err := s.GetTeam("T1")
	assert.Error(t, err)
}
