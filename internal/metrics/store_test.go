package metrics

import (
	"testing"

	"pitchside/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) MetricsStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return New(db)
}

func TestIncrementAndGetAll(t *testing.T) {
	store := setupTestDB(t)

	// 1. Initially, there should be no metrics
	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)

	// 2. Increment a new key
	store.Increment("commands_handled")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"commands_handled": 1}, metrics)

	// 3. Increment the same key again
	store.Increment("commands_handled")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"commands_handled": 2}, metrics)

	// 4. Increment a different key
	store.Increment("games_announced")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"commands_handled": 2,
		"games_announced":  1,
	}, metrics)
}
