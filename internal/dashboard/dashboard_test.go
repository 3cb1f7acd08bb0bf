package dashboard_test

import (
	"testing"

	"pitchside/internal/dashboard"
	"pitchside/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) dashboard.Store {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return dashboard.New(db)
}

func TestSaveAndGet(t *testing.T) {
	s := setupTestDB(t)

	got, err := s.Get("G1", dashboard.KindLeaderboard)
	require.NoError(t, err)
	assert.Nil(t, got)

	snap, err := dashboard.Snapshot([]string{"Alice: 3 wins", "Bob: 1 win"})
	require.NoError(t, err)

	require.NoError(t, s.Save(dashboard.Dashboard{
		GuildID:   "G1",
		Kind:      dashboard.KindLeaderboard,
		ChannelID: "C1",
		MessageID: "M1",
		Snapshot:  snap,
		UpdatedAt: 1700000000,
	}))

	got, err = s.Get("G1", dashboard.KindLeaderboard)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "M1", got.MessageID)
	assert.True(t, got.Unchanged(snap))

	other, err := dashboard.Snapshot([]string{"Alice: 4 wins"})
	require.NoError(t, err)
	assert.False(t, got.Unchanged(other))
}

func TestSaveOverwrites(t *testing.T) {
	s := setupTestDB(t)

	require.NoError(t, s.Save(dashboard.Dashboard{GuildID: "G1", Kind: dashboard.KindSchedule, ChannelID: "C1", MessageID: "M1", UpdatedAt: 1}))
	require.NoError(t, s.Save(dashboard.Dashboard{GuildID: "G1", Kind: dashboard.KindSchedule, ChannelID: "C1", MessageID: "M2", UpdatedAt: 2}))

	got, err := s.Get("G1", dashboard.KindSchedule)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "M2", got.MessageID)
	assert.Equal(t, int64(2), got.UpdatedAt)
}

func TestDelete(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.Save(dashboard.Dashboard{GuildID: "G1", Kind: dashboard.KindSchedule, UpdatedAt: 1}))

	require.NoError(t, s.Delete("G1", dashboard.KindSchedule))

	got, err := s.Get("G1", dashboard.KindSchedule)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnchangedOnNil(t *testing.T) {
	var d *dashboard.Dashboard
	assert.False(t, d.Unchanged([]byte{1}))
}
