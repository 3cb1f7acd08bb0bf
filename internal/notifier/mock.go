package notifier

import (
	"sync"

	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/schedule"
	"pitchside/internal/tickets"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	AnnounceGameCalls []struct {
		ChannelID          string
		Game               *schedule.Game
		HomeName, AwayName string
	}
	SendGameReminderCalls       []struct{ Game *schedule.Game }
	SendResultNotificationCalls []struct{ Game *schedule.Game }
	NotifyTicketOpenedCalls     []struct {
		ChannelID string
		Ticket    *tickets.Ticket
	}
	PostRecruitmentCalls []RecruitmentPost
	UpsertDashboardCalls []struct {
		ChannelID, MessageID, Title string
		Lines                       []string
	}

	// Spies
	AnnounceGameFunc           func(channelID string, game *schedule.Game, homeName, awayName string, dryRun bool) (string, error)
	SendGameReminderFunc       func(game *schedule.Game, homeName, awayName string, dryRun bool) error
	SendResultNotificationFunc func(game *schedule.Game, homeName, awayName string, dryRun bool) error
	UpsertDashboardFunc        func(channelID, messageID, title string, lines []string, dryRun bool) (string, error)
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceGameCalls = nil
	m.SendGameReminderCalls = nil
	m.SendResultNotificationCalls = nil
	m.NotifyTicketOpenedCalls = nil
	m.PostRecruitmentCalls = nil
	m.UpsertDashboardCalls = nil
}

func (m *Mock) AnnounceGame(channelID string, game *schedule.Game, homeName, awayName string, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnounceGameCalls = append(m.AnnounceGameCalls, struct {
		ChannelID          string
		Game               *schedule.Game
		HomeName, AwayName string
	}{channelID, game, homeName, awayName})
	if m.AnnounceGameFunc != nil {
		return m.AnnounceGameFunc(channelID, game, homeName, awayName, dryRun)
	}
	return "mock-message-id", nil
}

func (m *Mock) SendGameReminder(game *schedule.Game, homeName, awayName string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendGameReminderCalls = append(m.SendGameReminderCalls, struct{ Game *schedule.Game }{game})
	if m.SendGameReminderFunc != nil {
		return m.SendGameReminderFunc(game, homeName, awayName, dryRun)
	}
	return nil
}

func (m *Mock) SendResultNotification(game *schedule.Game, homeName, awayName string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct{ Game *schedule.Game }{game})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(game, homeName, awayName, dryRun)
	}
	return nil
}

func (m *Mock) NotifyTicketOpened(channelID string, tk *tickets.Ticket, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifyTicketOpenedCalls = append(m.NotifyTicketOpenedCalls, struct {
		ChannelID string
		Ticket    *tickets.Ticket
	}{channelID, tk})
	return "mock-ticket-message-id", nil
}

func (m *Mock) PostRecruitment(channelID string, post RecruitmentPost, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PostRecruitmentCalls = append(m.PostRecruitmentCalls, post)
	return "mock-recruit-message-id", nil
}

func (m *Mock) UpsertDashboard(channelID, messageID, title string, lines []string, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertDashboardCalls = append(m.UpsertDashboardCalls, struct {
		ChannelID, MessageID, Title string
		Lines                       []string
	}{channelID, messageID, title, lines})
	if m.UpsertDashboardFunc != nil {
		return m.UpsertDashboardFunc(channelID, messageID, title, lines, dryRun)
	}
	if messageID != "" {
		return messageID, nil
	}
	return "mock-dashboard-message-id", nil
}

func (m *Mock) FormatLeaderboardResponse(stats []league.PlayerStats) (any, error) {
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(stats *league.PlayerStats, query string) (any, error) {
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	return "formatted_player_not_found", nil
}

func (m *Mock) FormatRosterResponse(team *league.Team, roster []league.RosterEntry) (any, error) {
	return "formatted_roster", nil
}

func (m *Mock) FormatUpcomingGamesResponse(games []*schedule.Game, teamNames map[string]string) (any, error) {
	return "formatted_upcoming_games", nil
}

func (m *Mock) FormatBlacklistResponse(entries []blacklist.Entry) (any, error) {
	return "formatted_blacklist", nil
}
