package league

import (
	"database/sql"
	"sync"
)

// store handles all database operations for league rosters and stats.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a registered league member.
type Player struct {
	ID           string // Discord user ID
	GuildID      string
	Name         string
	Position     string
	JerseyNumber int
	RegisteredAt int64
}

// Team is a roster of players with an optional captain.
type Team struct {
	ID        string
	GuildID   string
	Name      string
	Tag       string
	CaptainID string
	CreatedAt int64
}

// RosterEntry is a player together with when they joined the team.
type RosterEntry struct {
	Player
	AddedAt int64
}

// PlayerStats represents a player's record for the leaderboard.
type PlayerStats struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	GamesPlayed   int     `json:"games_played"`
	GamesWon      int     `json:"games_won"`
	GamesLost     int     `json:"games_lost"`
	GamesDrawn    int     `json:"games_drawn"`
	GoalsFor      int     `json:"goals_for"`
	GoalsAgainst  int     `json:"goals_against"`
	WinPercentage float64 `json:"win_percentage"`
}

// GameOutcome carries a finished game's result into the stats tables.
type GameOutcome struct {
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
}
