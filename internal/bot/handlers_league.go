package bot

import (
	"fmt"

	"pitchside/internal/league"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func (b *Bot) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	user := interactionUser(i)
	if b.blacklist.IsListed(i.GuildID, user.ID) {
		b.respondText(s, i, "You are blacklisted in this league and cannot register.", true)
		return
	}

	opts := mapOptions(data.Options)
	player := league.Player{
		ID:           user.ID,
		GuildID:      i.GuildID,
		Name:         user.Username,
		Position:     opts.str("position"),
		JerseyNumber: opts.integer("jersey"),
		RegisteredAt: b.now().Unix(),
	}
	if i.Member != nil && i.Member.Nick != "" {
		player.Name = i.Member.Nick
	}

	if err := b.league.UpsertPlayer(player); err != nil {
		b.respondText(s, i, "Registration failed, try again later.", true)
		return
	}
	b.metricsStore.Increment("players_registered")
	b.respondText(s, i, fmt.Sprintf("Welcome to the league, **%s**! Use `/team create` or ask a captain to add you.", player.Name), false)
}

func (b *Bot) handleTeam(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	sub := data.Options[0]
	opts := mapOptions(sub.Options)
	user := interactionUser(i)

	switch sub.Name {
	case "create":
		if !b.league.IsKnownPlayer(user.ID) {
			b.respondText(s, i, "Register with `/register` before creating a team.", true)
			return
		}
		team := league.Team{
			ID:        uuid.NewString(),
			GuildID:   i.GuildID,
			Name:      opts.str("name"),
			Tag:       opts.str("tag"),
			CaptainID: user.ID,
			CreatedAt: b.now().Unix(),
		}
		if err := b.league.CreateTeam(team); err != nil {
			b.respondText(s, i, fmt.Sprintf("Could not create team: %v", err), true)
			return
		}
		if err := b.league.AddToRoster(team.ID, user.ID); err != nil {
			log.Error("Failed to add captain to roster", "error", err, "teamID", team.ID)
		}
		b.respondText(s, i, fmt.Sprintf("Team **%s** created with <@%s> as captain.", team.Name, user.ID), false)

	case "disband":
		team, err := b.league.GetTeamByName(i.GuildID, opts.str("name"))
		if err != nil {
			b.respondText(s, i, "No team by that name.", true)
			return
		}
		if !b.isTeamCaptain(i, team.CaptainID) {
			b.respondText(s, i, "Only the captain or a moderator can disband a team.", true)
			return
		}
		if err := b.league.DisbandTeam(team.ID); err != nil {
			b.respondText(s, i, "Failed to disband the team.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("Team **%s** has been disbanded.", team.Name), false)

	case "add", "remove":
		team, err := b.league.GetTeamByName(i.GuildID, opts.str("team"))
		if err != nil {
			b.respondText(s, i, "No team by that name.", true)
			return
		}
		if !b.isTeamCaptain(i, team.CaptainID) {
			b.respondText(s, i, "Only the captain or a moderator can manage the roster.", true)
			return
		}
		playerID := opts.userID("player")
		if sub.Name == "add" {
			if b.blacklist.IsListed(i.GuildID, playerID) {
				b.respondText(s, i, "That user is blacklisted and cannot join a team.", true)
				return
			}
			if !b.league.IsKnownPlayer(playerID) {
				b.respondText(s, i, "That user hasn't registered with `/register` yet.", true)
				return
			}
			if err := b.league.AddToRoster(team.ID, playerID); err != nil {
				b.respondText(s, i, "Failed to add the player.", true)
				return
			}
			b.respondText(s, i, fmt.Sprintf("<@%s> joined **%s**.", playerID, team.Name), false)
		} else {
			if err := b.league.RemoveFromRoster(team.ID, playerID); err != nil {
				b.respondText(s, i, "That player is not on the roster.", true)
				return
			}
			b.respondText(s, i, fmt.Sprintf("<@%s> was removed from **%s**.", playerID, team.Name), false)
		}

	case "roster":
		team, err := b.league.GetTeamByName(i.GuildID, opts.str("name"))
		if err != nil {
			b.respondText(s, i, "No team by that name.", true)
			return
		}
		roster, err := b.league.GetRoster(team.ID)
		if err != nil {
			b.respondText(s, i, "Failed to load the roster.", true)
			return
		}
		formatted, _ := b.notifier.FormatRosterResponse(team, roster)
		b.respondFormatted(s, i, formatted, false)

	case "list":
		teams, err := b.league.ListTeams(i.GuildID)
		if err != nil || len(teams) == 0 {
			b.respondText(s, i, "No teams yet. Create one with `/team create`.", true)
			return
		}
		var lines string
		for _, team := range teams {
			lines += "• " + team.Name
			if team.Tag != "" {
				lines += " [" + team.Tag + "]"
			}
			lines += "\n"
		}
		b.respondText(s, i, lines, false)
	}
}

func (b *Bot) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	query := mapOptions(data.Options).str("player")
	stats, err := b.league.GetPlayerStatsByName(i.GuildID, query)
	if err != nil {
		formatted, _ := b.notifier.FormatPlayerNotFoundResponse(query)
		b.respondFormatted(s, i, formatted, true)
		return
	}
	formatted, _ := b.notifier.FormatPlayerStatsResponse(stats, query)
	b.respondFormatted(s, i, formatted, false)
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	stats, err := b.league.GetLeaderboard(i.GuildID)
	if err != nil {
		b.respondText(s, i, "Failed to load the leaderboard.", true)
		return
	}
	formatted, _ := b.notifier.FormatLeaderboardResponse(stats)
	b.respondFormatted(s, i, formatted, false)
}
