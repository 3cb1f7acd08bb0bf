package bot

import (
	"fmt"
	"time"

	"pitchside/internal/schedule"
	"pitchside/internal/settings"
	"pitchside/internal/timeparse"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// resolveTime parses a natural-language time expression against the guild's
// configured timezone.
func (b *Bot) resolveTime(guildID, expression string, allowPast bool) (time.Time, error) {
	tzHint := b.settings.GetOr(guildID, settings.KeyTimezone, b.defaultTZ)
	return timeparse.Resolve(expression, tzHint, b.now(), allowPast)
}

func (b *Bot) handleSchedule(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	sub := data.Options[0]
	opts := mapOptions(sub.Options)
	user := interactionUser(i)

	switch sub.Name {
	case "game":
		if b.blacklist.IsListed(i.GuildID, user.ID) {
			b.respondText(s, i, "You are blacklisted and cannot schedule games.", true)
			return
		}
		home, err := b.league.GetTeamByName(i.GuildID, opts.str("home"))
		if err != nil {
			b.respondText(s, i, fmt.Sprintf("Unknown home team %q.", opts.str("home")), true)
			return
		}
		away, err := b.league.GetTeamByName(i.GuildID, opts.str("away"))
		if err != nil {
			b.respondText(s, i, fmt.Sprintf("Unknown away team %q.", opts.str("away")), true)
			return
		}
		if home.ID == away.ID {
			b.respondText(s, i, "A team can't play itself.", true)
			return
		}

		// Scheduling is future-only; /result handles games already played.
		start, err := b.resolveTime(i.GuildID, opts.str("when"), false)
		if err != nil {
			b.respondText(s, i, err.Error(), true)
			return
		}

		game := schedule.Game{
			ID:         uuid.NewString(),
			GuildID:    i.GuildID,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			StartTime:  start.Unix(),
			CreatedBy:  user.ID,
			CreatedAt:  b.now().Unix(),
		}
		if err := b.games.CreateGame(game); err != nil {
			b.respondText(s, i, "Failed to schedule the game.", true)
			return
		}
		b.metricsStore.Increment("games_scheduled")
		b.respondText(s, i, fmt.Sprintf("📅 **%s vs %s** scheduled for <t:%d:F>. It will be announced shortly.",
			home.Name, away.Name, start.Unix()), false)

	case "find":
		// Searching accepts past expressions like "last friday 7pm".
		target, err := b.resolveTime(i.GuildID, opts.str("when"), true)
		if err != nil {
			b.respondText(s, i, err.Error(), true)
			return
		}
		games, err := b.games.FindAround(i.GuildID, target.Unix(), int64(findWindow.Seconds()))
		if err != nil || len(games) == 0 {
			b.respondText(s, i, fmt.Sprintf("No games found near <t:%d:F>.", target.Unix()), true)
			return
		}
		var lines string
		for _, game := range games {
			homeName, awayName := b.teamNames(game)
			lines += fmt.Sprintf("`%s` — **%s vs %s** <t:%d:F>\n", game.ID, homeName, awayName, game.StartTime)
		}
		b.respondText(s, i, lines, true)

	case "reschedule":
		game, err := b.games.GetGame(opts.str("game"))
		if err != nil {
			b.respondText(s, i, "No game with that ID. Use `/schedule find` to look it up.", true)
			return
		}
		if game.CreatedBy != user.ID && !b.isModerator(i) {
			b.respondText(s, i, "Only the scheduler or a moderator can reschedule a game.", true)
			return
		}
		newStart, err := b.resolveTime(i.GuildID, opts.str("when"), false)
		if err != nil {
			b.respondText(s, i, err.Error(), true)
			return
		}
		if err := b.games.Reschedule(game.ID, newStart.Unix()); err != nil {
			b.respondText(s, i, "This game can no longer be rescheduled.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("Game moved to <t:%d:F>. It will be re-announced.", newStart.Unix()), false)

	case "cancel":
		game, err := b.games.GetGame(opts.str("game"))
		if err != nil {
			b.respondText(s, i, "No game with that ID. Use `/schedule find` to look it up.", true)
			return
		}
		if game.CreatedBy != user.ID && !b.isModerator(i) {
			b.respondText(s, i, "Only the scheduler or a moderator can cancel a game.", true)
			return
		}
		if err := b.games.Cancel(game.ID); err != nil {
			b.respondText(s, i, "This game can no longer be canceled.", true)
			return
		}
		homeName, awayName := b.teamNames(game)
		b.respondText(s, i, fmt.Sprintf("❌ **%s vs %s** has been canceled.", homeName, awayName), false)
	}
}

func (b *Bot) handleGames(s *discordgo.Session, i *discordgo.InteractionCreate) {
	games, err := b.games.ListUpcoming(i.GuildID, b.now().Unix(), 10)
	if err != nil {
		b.respondText(s, i, "Failed to load the schedule.", true)
		return
	}
	names := make(map[string]string)
	for _, game := range games {
		homeName, awayName := b.teamNames(game)
		names[game.HomeTeamID] = homeName
		names[game.AwayTeamID] = awayName
	}
	formatted, _ := b.notifier.FormatUpcomingGamesResponse(games, names)
	b.respondFormatted(s, i, formatted, false)
}

func (b *Bot) handleResult(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := mapOptions(data.Options)

	target, err := b.resolveTime(i.GuildID, opts.str("when"), true)
	if err != nil {
		b.respondText(s, i, err.Error(), true)
		return
	}
	games, err := b.games.FindAround(i.GuildID, target.Unix(), int64(findWindow.Seconds()))
	if err != nil || len(games) == 0 {
		b.respondText(s, i, fmt.Sprintf("No game found near <t:%d:F>.", target.Unix()), true)
		return
	}
	game := games[0]
	if game.HasResult {
		b.respondText(s, i, "That game already has a result recorded.", true)
		return
	}

	homeScore := opts.integer("home_score")
	awayScore := opts.integer("away_score")
	if homeScore < 0 || awayScore < 0 {
		b.respondText(s, i, "Scores can't be negative.", true)
		return
	}
	if err := b.games.ReportResult(game.ID, homeScore, awayScore); err != nil {
		b.respondText(s, i, "This game can't accept a result.", true)
		return
	}
	b.metricsStore.Increment("results_reported")
	homeName, awayName := b.teamNames(game)
	b.respondText(s, i, fmt.Sprintf("Recorded **%s %d – %d %s**. Stats will update shortly.",
		homeName, homeScore, awayScore, awayName), false)
}

// teamNames resolves both team names for display, falling back to the IDs.
func (b *Bot) teamNames(game *schedule.Game) (string, string) {
	home, away := game.HomeTeamID, game.AwayTeamID
	if team, err := b.league.GetTeam(game.HomeTeamID); err == nil && team != nil {
		home = team.Name
	}
	if team, err := b.league.GetTeam(game.AwayTeamID); err == nil && team != nil {
		away = team.Name
	}
	return home, away
}
