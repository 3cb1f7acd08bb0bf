package schedule

// Store defines the interface for interacting with the game schedule.
type Store interface {
	CreateGame(g Game) error
	GetGame(gameID string) (*Game, error)
	ListUpcoming(guildID string, from int64, limit int) ([]*Game, error)
	FindAround(guildID string, target, window int64) ([]*Game, error)
	Reschedule(gameID string, newStart int64) error
	Cancel(gameID string) error

	ReportResult(gameID string, homeScore, awayScore int) error
	ClaimRefereeSlot(gameID, refereeID, refereeName string) (bool, error)
	ReleaseRefereeSlot(gameID, refereeID string) error

	SetAnnouncement(gameID, channelID, messageID string) error
	UpdateStatus(gameID string, status Status) error
	MarkReminded(gameID string, at int64) error
	GetGamesForProcessing() ([]*Game, error)

	Clear()
}
