package discord

import (
	"fmt"
	"strings"

	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
)

// Embed accent colors.
const (
	colorAnnounce = 0x2ecc71
	colorReminder = 0xf1c40f
	colorResult   = 0x3498db
	colorTicket   = 0xe67e22
	colorRecruit  = 0x9b59b6
	colorNeutral  = 0x95a5a6
	colorAlert    = 0xe74c3c
)

// discordTime renders a unix timestamp with Discord's client-side markup so
// every reader sees it in their own timezone.
func discordTime(unix int64) string {
	return fmt.Sprintf("<t:%d:F> (<t:%d:R>)", unix, unix)
}

func refereeButtons(gameID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Referee this game",
					Style:    discordgo.PrimaryButton,
					CustomID: CustomIDRefereeClaim + ":" + gameID,
					Emoji:    &discordgo.ComponentEmoji{Name: "🦓"},
				},
				discordgo.Button{
					Label:    "Step down",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDRefereeRelease + ":" + gameID,
				},
			},
		},
	}
}

func ticketButtons(ticketID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close ticket",
					Style:    discordgo.DangerButton,
					CustomID: CustomIDTicketClose + ":" + ticketID,
				},
			},
		},
	}
}

func formatGameAnnouncement(game *schedule.Game, homeName, awayName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 %s vs %s", homeName, awayName),
		Color: colorAnnounce,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Kickoff", Value: discordTime(game.StartTime)},
		},
	}
	if game.RefereeName != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Referee", Value: game.RefereeName, Inline: true,
		})
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Referee", Value: "*slot open*", Inline: true,
		})
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: "Game " + game.ID}
	return embed
}

func formatGameReminder(game *schedule.Game, homeName, awayName string) *discordgo.MessageEmbed {
	lines := []string{
		fmt.Sprintf("**%s vs %s** kicks off %s", homeName, awayName, discordTime(game.StartTime)),
	}
	if game.RefereeName != "" {
		lines = append(lines, "Referee: "+game.RefereeName)
	} else {
		lines = append(lines, "⚠️ No referee signed up yet!")
	}
	return &discordgo.MessageEmbed{
		Title:       "⏰ Game reminder",
		Description: strings.Join(lines, "\n"),
		Color:       colorReminder,
	}
}

func formatResultNotification(game *schedule.Game, homeName, awayName string) *discordgo.MessageEmbed {
	var headline string
	switch {
	case game.HomeScore > game.AwayScore:
		headline = fmt.Sprintf("🏆 **%s** beat %s", homeName, awayName)
	case game.HomeScore < game.AwayScore:
		headline = fmt.Sprintf("🏆 **%s** beat %s", awayName, homeName)
	default:
		headline = fmt.Sprintf("🤝 %s and %s drew", homeName, awayName)
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Full time: %s %d – %d %s", homeName, game.HomeScore, game.AwayScore, awayName),
		Description: headline,
		Color:       colorResult,
	}
}

func titleKind(k tickets.Kind) string {
	s := strings.ToLower(string(k))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatTicket(tk *tickets.Ticket) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎫 %s ticket: %s", titleKind(tk.Kind), tk.Subject),
		Description: tk.Body,
		Color:       colorTicket,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Opened by", Value: fmt.Sprintf("<@%s>", tk.UserID), Inline: true},
			{Name: "Opened", Value: discordTime(tk.CreatedAt), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Ticket " + tk.ID},
	}
	return embed
}

func formatRecruitment(post notifier.RecruitmentPost) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Positions wanted", Value: post.Positions, Inline: true},
		{Name: "Contact", Value: post.Contact, Inline: true},
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📣 %s is recruiting!", post.TeamName),
		Description: post.Note,
		Color:       colorRecruit,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Posted by " + post.PostedBy},
	}
}

func formatDashboard(title string, lines []string) *discordgo.MessageEmbed {
	description := "*Nothing to show yet.*"
	if len(lines) > 0 {
		description = strings.Join(lines, "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorNeutral,
	}
}

var medals = []string{"🥇", "🥈", "🥉"}

func formatLeaderboard(stats []league.PlayerStats) *discordgo.MessageEmbed {
	if len(stats) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🏆 Leaderboard",
			Description: "No games recorded yet. Go play some!",
			Color:       colorNeutral,
		}
	}

	var b strings.Builder
	for i, stat := range stats {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "%s **%s** — %dW %dL %dD (%.0f%%), %d:%d goals\n",
			rank, stat.PlayerName, stat.GamesWon, stat.GamesLost, stat.GamesDrawn,
			stat.WinPercentage, stat.GoalsFor, stat.GoalsAgainst)
	}
	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard",
		Description: b.String(),
		Color:       colorResult,
	}
}

func formatPlayerStats(stats *league.PlayerStats, query string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📊 Stats for " + stats.PlayerName,
		Color: colorResult,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Played", Value: fmt.Sprintf("%d", stats.GamesPlayed), Inline: true},
			{Name: "Won", Value: fmt.Sprintf("%d", stats.GamesWon), Inline: true},
			{Name: "Lost", Value: fmt.Sprintf("%d", stats.GamesLost), Inline: true},
			{Name: "Drawn", Value: fmt.Sprintf("%d", stats.GamesDrawn), Inline: true},
			{Name: "Goals", Value: fmt.Sprintf("%d:%d", stats.GoalsFor, stats.GoalsAgainst), Inline: true},
			{Name: "Win rate", Value: fmt.Sprintf("%.1f%%", stats.WinPercentage), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Matched query: " + query},
	}
}

func formatPlayerNotFound(query string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Player not found",
		Description: fmt.Sprintf("No registered player matches `%s`.", query),
		Color:       colorAlert,
	}
}

func formatRoster(team *league.Team, roster []league.RosterEntry) *discordgo.MessageEmbed {
	title := team.Name
	if team.Tag != "" {
		title = fmt.Sprintf("%s [%s]", team.Name, team.Tag)
	}

	var b strings.Builder
	for _, entry := range roster {
		line := "• " + entry.Name
		if entry.Position != "" {
			line += " — " + entry.Position
		}
		if entry.JerseyNumber > 0 {
			line += fmt.Sprintf(" (#%d)", entry.JerseyNumber)
		}
		if entry.ID == team.CaptainID {
			line += " 🅲"
		}
		b.WriteString(line + "\n")
	}
	description := b.String()
	if description == "" {
		description = "*Empty roster.*"
	}
	return &discordgo.MessageEmbed{
		Title:       "👥 " + title,
		Description: description,
		Color:       colorNeutral,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d players", len(roster))},
	}
}

func formatUpcomingGames(games []*schedule.Game, teamNames map[string]string) *discordgo.MessageEmbed {
	if len(games) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "📅 Upcoming games",
			Description: "Nothing scheduled. Use `/schedule game` to set one up.",
			Color:       colorNeutral,
		}
	}

	var b strings.Builder
	for _, game := range games {
		home := teamNames[game.HomeTeamID]
		away := teamNames[game.AwayTeamID]
		if home == "" {
			home = game.HomeTeamID
		}
		if away == "" {
			away = game.AwayTeamID
		}
		fmt.Fprintf(&b, "**%s vs %s** — %s", home, away, discordTime(game.StartTime))
		if game.RefereeName == "" {
			b.WriteString(" · *needs a referee*")
		}
		b.WriteString("\n")
	}
	return &discordgo.MessageEmbed{
		Title:       "📅 Upcoming games",
		Description: b.String(),
		Color:       colorAnnounce,
	}
}

func formatBlacklist(entries []blacklist.Entry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🚫 Blacklist",
			Description: "The blacklist is empty.",
			Color:       colorNeutral,
		}
	}

	var b strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("• **%s**", e.SubjectName)
		if e.Reason != "" {
			line += " — " + e.Reason
		}
		b.WriteString(line + "\n")
	}
	return &discordgo.MessageEmbed{
		Title:       "🚫 Blacklist",
		Description: b.String(),
		Color:       colorAlert,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d entries", len(entries))},
	}
}
