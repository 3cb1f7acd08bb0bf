package notifier

import (
	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/schedule"
	"pitchside/internal/tickets"
)

// RecruitmentPost is a team's call for new players.
type RecruitmentPost struct {
	TeamName  string
	Positions string
	Contact   string
	Note      string
	PostedBy  string
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Discord).
type Notifier interface {
	// For the game lifecycle
	AnnounceGame(channelID string, game *schedule.Game, homeName, awayName string, dryRun bool) (string, error)
	SendGameReminder(game *schedule.Game, homeName, awayName string, dryRun bool) error
	SendResultNotification(game *schedule.Game, homeName, awayName string, dryRun bool) error

	// For tickets and recruitment
	NotifyTicketOpened(channelID string, tk *tickets.Ticket, dryRun bool) (string, error)
	PostRecruitment(channelID string, post RecruitmentPost, dryRun bool) (string, error)

	// For pinned dashboards: sends a new message or edits the existing one.
	UpsertDashboard(channelID, messageID, title string, lines []string, dryRun bool) (string, error)

	// For formatting responses for slash commands
	FormatLeaderboardResponse(stats []league.PlayerStats) (any, error)
	FormatPlayerStatsResponse(stats *league.PlayerStats, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
	FormatRosterResponse(team *league.Team, roster []league.RosterEntry) (any, error)
	FormatUpcomingGamesResponse(games []*schedule.Game, teamNames map[string]string) (any, error)
	FormatBlacklistResponse(entries []blacklist.Entry) (any, error)
}
