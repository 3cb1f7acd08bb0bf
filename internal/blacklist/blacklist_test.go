package blacklist_test

import (
	"testing"

	"pitchside/internal/blacklist"
	"pitchside/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) blacklist.Store {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return blacklist.New(db)
}

func TestAddAndIsListed(t *testing.T) {
	s := setupTestDB(t)

	err := s.Add(blacklist.Entry{
		GuildID:     "G1",
		SubjectID:   "U1",
		SubjectName: "Troublemaker",
		Reason:      "no-show x3",
		AddedBy:     "MOD1",
		CreatedAt:   1700000000,
	})
	require.NoError(t, err)

	assert.True(t, s.IsListed("G1", "U1"))
	assert.False(t, s.IsListed("G1", "U2"))
	// Blacklists are per guild.
	assert.False(t, s.IsListed("G2", "U1"))
}

func TestAddUpdatesExisting(t *testing.T) {
	s := setupTestDB(t)

	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G1", SubjectID: "U1", SubjectName: "X", Reason: "first", AddedBy: "M1", CreatedAt: 1}))
	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G1", SubjectID: "U1", SubjectName: "X", Reason: "second", AddedBy: "M2", CreatedAt: 2}))

	entries, err := s.List("G1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Reason)
	assert.Equal(t, "M2", entries[0].AddedBy)
}

func TestRemove(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G1", SubjectID: "U1", SubjectName: "X", AddedBy: "M1", CreatedAt: 1}))

	require.NoError(t, s.Remove("G1", "U1"))
	assert.False(t, s.IsListed("G1", "U1"))

	assert.Error(t, s.Remove("G1", "U1"))
}

func TestList(t *testing.T) {
	s := setupTestDB(t)
	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G1", SubjectID: "U1", SubjectName: "First", AddedBy: "M1", CreatedAt: 100}))
	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G1", SubjectID: "U2", SubjectName: "Second", AddedBy: "M1", CreatedAt: 200}))
	require.NoError(t, s.Add(blacklist.Entry{GuildID: "G2", SubjectID: "U3", SubjectName: "Elsewhere", AddedBy: "M1", CreatedAt: 300}))

	entries, err := s.List("G1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "U2", entries[0].SubjectID)
	assert.Equal(t, "U1", entries[1].SubjectID)
}
