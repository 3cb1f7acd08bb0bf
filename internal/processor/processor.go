package processor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"pitchside/internal/dashboard"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/schedule"
	"pitchside/internal/settings"
)

const defaultReminderLeadMinutes = 60

// New creates a new Processor.
func New(games GameStore, leagueStore LeagueStore, settingsStore SettingsStore, dashboards dashboard.Store, notifier Notifier, metrics metrics.Metrics) *Processor {
	return &Processor{
		games:      games,
		league:     leagueStore,
		settings:   settingsStore,
		dashboards: dashboards,
		notifier:   notifier,
		metrics:    metrics,
		now:        time.Now,
	}
}

// ProcessGames fetches games that need processing and advances them through the state machine.
func (p *Processor) ProcessGames(dryRun bool) {
	log.Info("Starting game processing...")
	games, err := p.games.GetGamesForProcessing()
	if err != nil {
		log.Error("Failed to get games for processing", "error", err)
		return
	}

	if len(games) == 0 {
		log.Info("No games to process.")
		return
	}

	log.Info("Found games to process", "count", len(games))
	guilds := make(map[string]bool)
	for _, game := range games {
		startTime := time.Now()
		if p.processGame(game, dryRun) {
			guilds[game.GuildID] = true
		}
		duration := time.Since(startTime).Milliseconds()
		p.metrics.ObserveProcessingDuration(float64(duration))
	}

	// Refresh dashboards once per guild that saw a transition.
	for guildID := range guilds {
		p.RefreshDashboards(guildID, dryRun)
	}
	log.Info("Game processing finished.")
}

// processGame advances a single game until its state stops changing. Returns
// whether any transition happened.
func (p *Processor) processGame(game *schedule.Game, dryRun bool) bool {
	log.Info("Processing game", "gameID", game.ID, "initial_status", game.Status)
	changed := false
	for {
		currentState := game.Status
		log.Debug("Evaluating game state", "gameID", game.ID, "status", currentState)

		switch currentState {
		case schedule.StatusScheduled:
			channelID := p.settings.GetOr(game.GuildID, settings.KeyAnnounceChannel, "")
			if channelID == "" {
				log.Warn("No announce channel configured, skipping announcement", "guildID", game.GuildID, "gameID", game.ID)
				return changed
			}
			homeName, awayName := p.teamNames(game)
			messageID, err := p.notifier.AnnounceGame(channelID, game, homeName, awayName, dryRun)
			if err != nil {
				log.Error("Failed to announce game", "error", err, "gameID", game.ID)
				return changed
			}
			if !dryRun {
				if err := p.games.SetAnnouncement(game.ID, channelID, messageID); err != nil {
					log.Error("Failed to persist announcement handle", "error", err, "gameID", game.ID)
				}
			}
			game.ChannelID = channelID
			game.MessageID = messageID
			p.updateStatus(game, schedule.StatusAnnounced, dryRun)

		case schedule.StatusAnnounced:
			if !p.reminderDue(game) {
				return changed
			}
			// Don't spam reminders for games whose kickoff is long gone,
			// e.g. historic fixtures entered for record keeping.
			if p.now().Unix() < game.StartTime {
				homeName, awayName := p.teamNames(game)
				if err := p.notifier.SendGameReminder(game, homeName, awayName, dryRun); err != nil {
					log.Error("Failed to send game reminder", "error", err, "gameID", game.ID)
					return changed
				}
			}
			at := p.now().Unix()
			if !dryRun {
				if err := p.games.MarkReminded(game.ID, at); err != nil {
					log.Error("Failed to mark game reminded", "error", err, "gameID", game.ID)
					return changed
				}
			}
			game.Status = schedule.StatusReminded
			game.RemindedAt = at
			changed = true

		case schedule.StatusReminded:
			// Waiting for someone to report the result.
			return changed

		case schedule.StatusResultAvailable:
			log.Info("Game result is available. Recording stats.", "gameID", game.ID)
			homeName, awayName := p.teamNames(game)
			// Results entered more than a day after kickoff are treated as
			// backfill and recorded silently.
			if p.now().Sub(time.Unix(game.StartTime, 0)) < 24*time.Hour {
				if err := p.notifier.SendResultNotification(game, homeName, awayName, dryRun); err != nil {
					log.Error("Failed to send result notification", "error", err, "gameID", game.ID)
				}
			}
			if !dryRun {
				err := p.league.RecordGameResult(league.GameOutcome{
					HomeTeamID: game.HomeTeamID,
					AwayTeamID: game.AwayTeamID,
					HomeScore:  game.HomeScore,
					AwayScore:  game.AwayScore,
				})
				if err != nil {
					log.Error("Failed to record game result", "error", err, "gameID", game.ID)
					return changed
				}
			}
			p.updateStatus(game, schedule.StatusStatsRecorded, dryRun)

		case schedule.StatusStatsRecorded:
			log.Info("Stats recorded. Marking game as complete.", "gameID", game.ID)
			p.metrics.IncGamesProcessed()
			p.updateStatus(game, schedule.StatusCompleted, dryRun)

		case schedule.StatusCompleted, schedule.StatusCanceled:
			log.Debug("Game is in a terminal state. No further processing needed.", "gameID", game.ID)
			return changed

		default:
			log.Warn("Unknown processing status", "status", currentState, "gameID", game.ID)
			return changed
		}

		if game.Status == currentState {
			log.Debug("Game state did not change. Finished processing for now.", "gameID", game.ID, "status", currentState)
			break
		}
		changed = true
	}
	log.Info("Finished processing game", "gameID", game.ID, "final_status", game.Status)
	return changed
}

func (p *Processor) updateStatus(game *schedule.Game, status schedule.Status, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update game status", "gameID", game.ID, "from", game.Status, "to", status)
		game.Status = status
		return
	}
	if err := p.games.UpdateStatus(game.ID, status); err != nil {
		log.Error("Failed to update game status", "error", err, "gameID", game.ID, "status", status)
		return
	}
	game.Status = status
}

// reminderDue reports whether the game is inside its reminder window.
func (p *Processor) reminderDue(game *schedule.Game) bool {
	leadMinutes := defaultReminderLeadMinutes
	if raw := p.settings.GetOr(game.GuildID, settings.KeyReminderLead, ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			leadMinutes = parsed
		}
	}
	lead := time.Duration(leadMinutes) * time.Minute
	return p.now().Unix() >= game.StartTime-int64(lead.Seconds())
}

func (p *Processor) teamNames(game *schedule.Game) (string, string) {
	home, away := game.HomeTeamID, game.AwayTeamID
	if team, err := p.league.GetTeam(game.HomeTeamID); err == nil && team != nil {
		home = team.Name
	}
	if team, err := p.league.GetTeam(game.AwayTeamID); err == nil && team != nil {
		away = team.Name
	}
	return home, away
}

// RefreshDashboards re-renders the pinned leaderboard and schedule dashboards
// for a guild, skipping the Discord round trip when nothing changed.
func (p *Processor) RefreshDashboards(guildID string, dryRun bool) {
	channelID := p.settings.GetOr(guildID, settings.KeyAnnounceChannel, "")
	if channelID == "" {
		log.Debug("No announce channel configured, skipping dashboards", "guildID", guildID)
		return
	}

	stats, err := p.league.GetLeaderboard(guildID)
	if err != nil {
		log.Error("Failed to load leaderboard for dashboard", "error", err, "guildID", guildID)
	} else {
		lines := make([]string, 0, len(stats))
		for i, stat := range stats {
			lines = append(lines, fmt.Sprintf("%d. **%s** — %dW %dL %dD", i+1, stat.PlayerName, stat.GamesWon, stat.GamesLost, stat.GamesDrawn))
		}
		p.refreshDashboard(guildID, dashboard.KindLeaderboard, channelID, "🏆 Leaderboard", lines, dryRun)
	}

	games, err := p.games.ListUpcoming(guildID, p.now().Unix(), 10)
	if err != nil {
		log.Error("Failed to load upcoming games for dashboard", "error", err, "guildID", guildID)
		return
	}
	lines := make([]string, 0, len(games))
	for _, game := range games {
		homeName, awayName := p.teamNames(game)
		lines = append(lines, fmt.Sprintf("**%s vs %s** — <t:%d:F>", homeName, awayName, game.StartTime))
	}
	p.refreshDashboard(guildID, dashboard.KindSchedule, channelID, "📅 Upcoming games", lines, dryRun)
}

func (p *Processor) refreshDashboard(guildID string, kind dashboard.Kind, channelID, title string, lines []string, dryRun bool) {
	snapshot, err := dashboard.Snapshot(lines)
	if err != nil {
		log.Error("Failed to snapshot dashboard", "error", err, "kind", kind)
		return
	}

	existing, err := p.dashboards.Get(guildID, kind)
	if err != nil {
		log.Error("Failed to load dashboard state", "error", err, "kind", kind)
		return
	}
	if existing.Unchanged(snapshot) {
		log.Debug("Dashboard unchanged, skipping refresh", "guildID", guildID, "kind", kind)
		return
	}

	messageID := ""
	if existing != nil {
		messageID = existing.MessageID
		channelID = existing.ChannelID
	}
	newMessageID, err := p.notifier.UpsertDashboard(channelID, messageID, title, lines, dryRun)
	if err != nil {
		log.Error("Failed to upsert dashboard message", "error", err, "kind", kind)
		return
	}
	if dryRun {
		return
	}

	err = p.dashboards.Save(dashboard.Dashboard{
		GuildID:   guildID,
		Kind:      kind,
		ChannelID: channelID,
		MessageID: newMessageID,
		Snapshot:  snapshot,
		UpdatedAt: p.now().Unix(),
	})
	if err != nil {
		log.Error("Failed to persist dashboard state", "error", err, "kind", kind)
	}
}
