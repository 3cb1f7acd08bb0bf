package league

// Store defines the interface for interacting with league rosters and stats.
type Store interface {
	UpsertPlayer(p Player) error
	GetPlayer(playerID string) (*Player, error)
	ListPlayers(guildID string) ([]Player, error)
	IsKnownPlayer(playerID string) bool

	CreateTeam(t Team) error
	DisbandTeam(teamID string) error
	GetTeam(teamID string) (*Team, error)
	GetTeamByName(guildID, name string) (*Team, error)
	ListTeams(guildID string) ([]Team, error)

	AddToRoster(teamID, playerID string) error
	RemoveFromRoster(teamID, playerID string) error
	GetRoster(teamID string) ([]RosterEntry, error)

	RecordGameResult(outcome GameOutcome) error
	GetLeaderboard(guildID string) ([]PlayerStats, error)
	GetPlayerStatsByName(guildID, playerName string) (*PlayerStats, error)

	Clear()
}
