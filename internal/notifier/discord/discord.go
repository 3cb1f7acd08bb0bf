package discord

import (
	"encoding/json"
	"fmt"

	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Component custom ID prefixes, shared with the interaction router.
const (
	CustomIDRefereeClaim   = "referee_claim"
	CustomIDRefereeRelease = "referee_release"
	CustomIDTicketClose    = "ticket_close"
)

// discordClient is an interface that contains the methods from the
// discordgo.Session that we use. This allows for easy mocking in tests.
type discordClient interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Discord.
type Notifier struct {
	api     discordClient
	metrics metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(session *discordgo.Session, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:     session,
		metrics: metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api discordClient, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:     api,
		metrics: metrics,
	}
}

func (d *Notifier) sendMessage(channelID string, msg *discordgo.MessageSend, dryRun bool) (string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(msg, "", "  ")
		log.Info("[Dry Run] Would send Discord message", "channel", channelID, "message", string(jsonMsg))
		return "dry-run-message-id", nil
	}

	sent, err := d.api.ChannelMessageSendComplex(channelID, msg)
	if err != nil {
		d.metrics.IncDiscordNotifFailed()
		log.Error("Failed to send Discord message", "error", err, "channel", channelID)
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	d.metrics.IncDiscordNotifSent()
	log.Info("Successfully sent Discord message", "channel", channelID, "messageID", sent.ID)
	return sent.ID, nil
}

func (d *Notifier) editMessage(channelID, messageID string, embed *discordgo.MessageEmbed, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would edit Discord message", "channel", channelID, "messageID", messageID)
		return nil
	}

	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	_, err := d.api.ChannelMessageEditComplex(edit)
	if err != nil {
		d.metrics.IncDiscordNotifFailed()
		log.Error("Failed to edit Discord message", "error", err, "channel", channelID, "messageID", messageID)
		return fmt.Errorf("failed to edit message: %w", err)
	}
	d.metrics.IncDiscordNotifSent()
	return nil
}

// AnnounceGame posts the fixture announcement with a referee signup button and
// returns the message ID so reminders can reference it.
func (d *Notifier) AnnounceGame(channelID string, game *schedule.Game, homeName, awayName string, dryRun bool) (string, error) {
	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{formatGameAnnouncement(game, homeName, awayName)},
		Components: refereeButtons(game.ID),
	}
	return d.sendMessage(channelID, msg, dryRun)
}

// SendGameReminder posts a kickoff reminder in the announcement channel.
func (d *Notifier) SendGameReminder(game *schedule.Game, homeName, awayName string, dryRun bool) error {
	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{formatGameReminder(game, homeName, awayName)},
	}
	if game.MessageID != "" {
		msg.Reference = &discordgo.MessageReference{
			ChannelID: game.ChannelID,
			MessageID: game.MessageID,
		}
	}
	_, err := d.sendMessage(game.ChannelID, msg, dryRun)
	return err
}

// SendResultNotification posts the final score.
func (d *Notifier) SendResultNotification(game *schedule.Game, homeName, awayName string, dryRun bool) error {
	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{formatResultNotification(game, homeName, awayName)},
	}
	_, err := d.sendMessage(game.ChannelID, msg, dryRun)
	return err
}

// NotifyTicketOpened posts a new ticket into the moderator channel with a
// close button.
func (d *Notifier) NotifyTicketOpened(channelID string, tk *tickets.Ticket, dryRun bool) (string, error) {
	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{formatTicket(tk)},
		Components: ticketButtons(tk.ID),
	}
	return d.sendMessage(channelID, msg, dryRun)
}

// PostRecruitment posts a team's call for players.
func (d *Notifier) PostRecruitment(channelID string, post notifier.RecruitmentPost, dryRun bool) (string, error) {
	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{formatRecruitment(post)},
	}
	return d.sendMessage(channelID, msg, dryRun)
}

// UpsertDashboard edits the pinned dashboard message if one exists, otherwise
// sends a fresh one. Returns the message ID that now holds the dashboard.
func (d *Notifier) UpsertDashboard(channelID, messageID, title string, lines []string, dryRun bool) (string, error) {
	embed := formatDashboard(title, lines)
	if messageID != "" {
		if err := d.editMessage(channelID, messageID, embed, dryRun); err == nil {
			return messageID, nil
		}
		// The stored message may have been deleted by a moderator. Fall
		// through and post a new one.
		log.Warn("Dashboard edit failed, posting a new message", "channel", channelID, "messageID", messageID)
	}
	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	return d.sendMessage(channelID, msg, dryRun)
}

// FormatLeaderboardResponse formats a leaderboard embed for a slash command response.
func (d *Notifier) FormatLeaderboardResponse(stats []league.PlayerStats) (any, error) {
	return formatLeaderboard(stats), nil
}

// FormatPlayerStatsResponse formats a player stats embed for a slash command response.
func (d *Notifier) FormatPlayerStatsResponse(stats *league.PlayerStats, query string) (any, error) {
	return formatPlayerStats(stats, query), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (d *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return formatPlayerNotFound(query), nil
}

// FormatRosterResponse formats a team roster embed for a slash command response.
func (d *Notifier) FormatRosterResponse(team *league.Team, roster []league.RosterEntry) (any, error) {
	return formatRoster(team, roster), nil
}

// FormatUpcomingGamesResponse formats the upcoming fixtures embed for a slash command response.
func (d *Notifier) FormatUpcomingGamesResponse(games []*schedule.Game, teamNames map[string]string) (any, error) {
	return formatUpcomingGames(games, teamNames), nil
}

// FormatBlacklistResponse formats the blacklist embed for a slash command response.
func (d *Notifier) FormatBlacklistResponse(entries []blacklist.Entry) (any, error) {
	return formatBlacklist(entries), nil
}
