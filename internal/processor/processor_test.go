package processor

import (
	"testing"
	"time"

	"pitchside/internal/dashboard"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
	"pitchside/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	games      *schedule.MockStore
	league     *league.MockStore
	settings   *settings.MockStore
	dashboards *dashboard.MockStore
	notif      *notifier.Mock
	metr       *metrics.Mock
	p          *Processor
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		games:      schedule.NewMock(),
		league:     league.NewMock(),
		settings:   settings.NewMock(),
		dashboards: dashboard.NewMock(),
		notif:      notifier.NewMock(),
		metr:       metrics.NewMock(),
		now:        time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC),
	}
	f.p = New(f.games, f.league, f.settings, f.dashboards, f.notif, f.metr)
	f.p.now = func() time.Time { return f.now }

	require.NoError(t, f.settings.Set("G1", settings.KeyAnnounceChannel, "C1"))
	f.league.GetTeamFunc = func(teamID string) (*league.Team, error) {
		names := map[string]string{"HOME": "River Ravens", "AWAY": "Dockside United"}
		if name, ok := names[teamID]; ok {
			return &league.Team{ID: teamID, GuildID: "G1", Name: name}, nil
		}
		return nil, nil
	}
	return f
}

func (f *fixture) game(status schedule.Status, start time.Time) *schedule.Game {
	return &schedule.Game{
		ID:         "game-1",
		GuildID:    "G1",
		HomeTeamID: "HOME",
		AwayTeamID: "AWAY",
		StartTime:  start.Unix(),
		ChannelID:  "C1",
		MessageID:  "M1",
		Status:     status,
	}
}

func TestProcessGames(t *testing.T) {
	t.Run("scheduled game gets announced", func(t *testing.T) {
		f := newFixture(t)
		game := f.game(schedule.StatusScheduled, f.now.Add(3*time.Hour))
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		require.Len(t, f.notif.AnnounceGameCalls, 1)
		assert.Equal(t, "C1", f.notif.AnnounceGameCalls[0].ChannelID)
		assert.Equal(t, "River Ravens", f.notif.AnnounceGameCalls[0].HomeName)
		assert.Equal(t, "Dockside United", f.notif.AnnounceGameCalls[0].AwayName)
		require.Len(t, f.games.SetAnnouncementCalls, 1)
		assert.Equal(t, "mock-message-id", f.games.SetAnnouncementCalls[0].MessageID)
		require.Len(t, f.games.UpdateStatusCalls, 1)
		assert.Equal(t, schedule.StatusAnnounced, f.games.UpdateStatusCalls[0].Status)
		// Kickoff is outside the reminder window, so no reminder yet.
		assert.Empty(t, f.notif.SendGameReminderCalls)
	})

	t.Run("no announce channel means no announcement", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.settings.Delete("G1", settings.KeyAnnounceChannel))
		game := f.game(schedule.StatusScheduled, f.now.Add(3*time.Hour))
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		assert.Empty(t, f.notif.AnnounceGameCalls)
		assert.Empty(t, f.games.UpdateStatusCalls)
	})

	t.Run("announced game inside window gets a reminder", func(t *testing.T) {
		f := newFixture(t)
		game := f.game(schedule.StatusAnnounced, f.now.Add(30*time.Minute))
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		require.Len(t, f.notif.SendGameReminderCalls, 1)
		require.Len(t, f.games.MarkRemindedCalls, 1)
		assert.Equal(t, f.now.Unix(), f.games.MarkRemindedCalls[0].At)
	})

	t.Run("reminder lead respects guild setting", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.settings.Set("G1", settings.KeyReminderLead, "240"))
		game := f.game(schedule.StatusAnnounced, f.now.Add(3*time.Hour))
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		require.Len(t, f.notif.SendGameReminderCalls, 1)
	})

	t.Run("reported result records stats and completes the game", func(t *testing.T) {
		f := newFixture(t)
		game := f.game(schedule.StatusResultAvailable, f.now.Add(-2*time.Hour))
		game.HomeScore, game.AwayScore, game.HasResult = 3, 1, true
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		require.Len(t, f.notif.SendResultNotificationCalls, 1)
		require.Len(t, f.league.RecordGameResultCalls, 1)
		outcome := f.league.RecordGameResultCalls[0]
		assert.Equal(t, "HOME", outcome.HomeTeamID)
		assert.Equal(t, 3, outcome.HomeScore)
		assert.Equal(t, 1, outcome.AwayScore)

		require.Len(t, f.games.UpdateStatusCalls, 2)
		assert.Equal(t, schedule.StatusStatsRecorded, f.games.UpdateStatusCalls[0].Status)
		assert.Equal(t, schedule.StatusCompleted, f.games.UpdateStatusCalls[1].Status)
		assert.Equal(t, 1, f.metr.GamesProcessed())

		// Dashboards refresh once the standings move.
		require.Len(t, f.notif.UpsertDashboardCalls, 2)
		require.Len(t, f.dashboards.SaveCalls, 2)
	})

	t.Run("late result is recorded silently", func(t *testing.T) {
		f := newFixture(t)
		game := f.game(schedule.StatusResultAvailable, f.now.Add(-48*time.Hour))
		game.HomeScore, game.AwayScore, game.HasResult = 2, 2, true
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(false)

		assert.Empty(t, f.notif.SendResultNotificationCalls)
		require.Len(t, f.league.RecordGameResultCalls, 1)
	})

	t.Run("dry run advances nothing in the store", func(t *testing.T) {
		f := newFixture(t)
		game := f.game(schedule.StatusResultAvailable, f.now.Add(-time.Hour))
		game.HomeScore, game.AwayScore, game.HasResult = 1, 0, true
		f.games.GetGamesForProcessingFunc = func() ([]*schedule.Game, error) {
			return []*schedule.Game{game}, nil
		}

		f.p.ProcessGames(true)

		assert.Empty(t, f.games.UpdateStatusCalls)
		assert.Empty(t, f.league.RecordGameResultCalls)
		assert.Empty(t, f.dashboards.SaveCalls)
	})
}

func TestRefreshDashboardsSkipsUnchanged(t *testing.T) {
	f := newFixture(t)

	f.p.RefreshDashboards("G1", false)
	require.Len(t, f.notif.UpsertDashboardCalls, 2)
	require.Len(t, f.dashboards.SaveCalls, 2)

	// Nothing changed, so the second refresh is a no-op.
	f.p.RefreshDashboards("G1", false)
	assert.Len(t, f.notif.UpsertDashboardCalls, 2)
	assert.Len(t, f.dashboards.SaveCalls, 2)
}
