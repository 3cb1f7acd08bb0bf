package processor

import (
	"pitchside/internal/league"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
)

// GameStore defines the schedule operations required by the processor.
type GameStore interface {
	GetGamesForProcessing() ([]*schedule.Game, error)
	UpdateStatus(gameID string, status schedule.Status) error
	MarkReminded(gameID string, at int64) error
	SetAnnouncement(gameID, channelID, messageID string) error
	ListUpcoming(guildID string, from int64, limit int) ([]*schedule.Game, error)
}

// LeagueStore defines the roster and stats operations required by the processor.
type LeagueStore interface {
	GetTeam(teamID string) (*league.Team, error)
	RecordGameResult(outcome league.GameOutcome) error
	GetLeaderboard(guildID string) ([]league.PlayerStats, error)
}

// SettingsStore defines the per-guild configuration lookups required by the processor.
type SettingsStore interface {
	GetOr(guildID, key, fallback string) string
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
