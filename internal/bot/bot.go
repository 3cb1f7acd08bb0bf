package bot

import (
	"fmt"
	"time"

	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
	"pitchside/internal/settings"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// How far around a resolved instant /schedule find and /result will look.
const findWindow = 12 * time.Hour

// Bot wires Discord interactions to the stores and the notifier.
type Bot struct {
	session      *discordgo.Session
	appID        string
	guildID      string
	league       league.Store
	games        schedule.Store
	blacklist    blacklist.Store
	tickets      tickets.Store
	settings     settings.Store
	notifier     notifier.Notifier
	metrics      metrics.Metrics
	metricsStore metrics.MetricsStore
	limiter      *Limiter
	defaultTZ    string
	now          func() time.Time
}

// Config carries the identifiers the bot needs to register commands.
type Config struct {
	AppID     string
	GuildID   string
	DefaultTZ string
}

// New creates a new Bot. The session is expected to be created but not yet opened.
func New(
	session *discordgo.Session,
	cfg Config,
	leagueStore league.Store,
	gameStore schedule.Store,
	blacklistStore blacklist.Store,
	ticketStore tickets.Store,
	settingsStore settings.Store,
	notif notifier.Notifier,
	metricsSvc metrics.Metrics,
	metricsStore metrics.MetricsStore,
) *Bot {
	return &Bot{
		session:      session,
		appID:        cfg.AppID,
		guildID:      cfg.GuildID,
		league:       leagueStore,
		games:        gameStore,
		blacklist:    blacklistStore,
		tickets:      ticketStore,
		settings:     settingsStore,
		notifier:     notif,
		metrics:      metricsSvc,
		metricsStore: metricsStore,
		limiter:      NewLimiter(2*time.Second, 5),
		defaultTZ:    cfg.DefaultTZ,
		now:          time.Now,
	}
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteractionCreate)
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	// Bulk overwrite keeps the registered set exactly in sync with the code;
	// stale commands from earlier deploys disappear.
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, b.guildID, commands()); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	log.Info("Registered slash commands", "count", len(commands()), "guildID", b.guildID)
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.session.Close()
}

// SweepLimiter drops rate limiter state for users who have gone quiet.
func (b *Bot) SweepLimiter() {
	b.limiter.Sweep()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info("Discord session ready", "user", r.User.Username)
}
