package schedule

import (
	"database/sql"
	"sync"
)

// store handles all database operations for scheduled games.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Status tracks where a game is in its notification lifecycle.
type Status string

const (
	StatusScheduled       Status = "SCHEDULED"
	StatusAnnounced       Status = "ANNOUNCED"
	StatusReminded        Status = "REMINDED"
	StatusResultAvailable Status = "RESULT_AVAILABLE"
	StatusStatsRecorded   Status = "STATS_RECORDED"
	StatusCompleted       Status = "COMPLETED"
	StatusCanceled        Status = "CANCELED"
)

// Game is a scheduled fixture between two teams.
// StartTime and the other timestamps are unix seconds in UTC.
type Game struct {
	ID          string
	GuildID     string
	HomeTeamID  string
	AwayTeamID  string
	StartTime   int64
	CreatedBy   string
	CreatedAt   int64
	ChannelID   string
	MessageID   string
	RefereeID   string
	RefereeName string
	HomeScore   int
	AwayScore   int
	HasResult   bool
	Status      Status
	RemindedAt  int64
}
