package bot

import (
	"fmt"

	"pitchside/internal/blacklist"
	"pitchside/internal/notifier"
	"pitchside/internal/settings"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func (b *Bot) handleBlacklist(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.isModerator(i) {
		b.respondText(s, i, "Only moderators can manage the blacklist.", true)
		return
	}

	sub := data.Options[0]
	opts := mapOptions(sub.Options)
	user := interactionUser(i)

	switch sub.Name {
	case "add":
		subjectID := opts.userID("user")
		subjectName := subjectID
		if resolved, ok := data.Resolved.Users[subjectID]; ok && resolved != nil {
			subjectName = resolved.Username
		}
		err := b.blacklist.Add(blacklist.Entry{
			GuildID:     i.GuildID,
			SubjectID:   subjectID,
			SubjectName: subjectName,
			Reason:      opts.str("reason"),
			AddedBy:     user.ID,
			CreatedAt:   b.now().Unix(),
		})
		if err != nil {
			b.respondText(s, i, "Failed to update the blacklist.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("🚫 <@%s> has been blacklisted.", subjectID), false)

	case "remove":
		subjectID := opts.userID("user")
		if err := b.blacklist.Remove(i.GuildID, subjectID); err != nil {
			b.respondText(s, i, "That user is not on the blacklist.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("<@%s> was removed from the blacklist.", subjectID), false)

	case "list":
		entries, err := b.blacklist.List(i.GuildID)
		if err != nil {
			b.respondText(s, i, "Failed to load the blacklist.", true)
			return
		}
		formatted, _ := b.notifier.FormatBlacklistResponse(entries)
		b.respondFormatted(s, i, formatted, true)
	}
}

func (b *Bot) handleTicket(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	sub := data.Options[0]
	user := interactionUser(i)

	switch sub.Name {
	case "open":
		if b.blacklist.IsListed(i.GuildID, user.ID) {
			b.respondText(s, i, "You are blacklisted and cannot open tickets.", true)
			return
		}
		kind := mapOptions(sub.Options).str("kind")
		if kind == "" {
			kind = string(tickets.KindSupport)
		}
		existing, err := b.tickets.OpenTicketFor(i.GuildID, user.ID, tickets.Kind(kind))
		if err == nil && existing != nil {
			b.respondText(s, i, "You already have an open ticket of that kind. A moderator will get to it.", true)
			return
		}
		b.openTicketModal(s, i, kind)

	case "list":
		if !b.isModerator(i) {
			b.respondText(s, i, "Only moderators can list tickets.", true)
			return
		}
		open, err := b.tickets.ListOpen(i.GuildID)
		if err != nil {
			b.respondText(s, i, "Failed to load tickets.", true)
			return
		}
		if len(open) == 0 {
			b.respondText(s, i, "No open tickets. 🎉", true)
			return
		}
		var lines string
		for _, tk := range open {
			lines += fmt.Sprintf("`%s` %s — **%s** by <@%s>\n", tk.ID, tk.Kind, tk.Subject, tk.UserID)
		}
		b.respondText(s, i, lines, true)
	}
}

// createTicket persists a ticket submitted through the modal and notifies the
// moderator channel.
func (b *Bot) createTicket(s *discordgo.Session, i *discordgo.InteractionCreate, kind tickets.Kind, subject, body string) {
	user := interactionUser(i)
	tk := tickets.Ticket{
		ID:        uuid.NewString(),
		GuildID:   i.GuildID,
		UserID:    user.ID,
		Kind:      kind,
		Subject:   subject,
		Body:      body,
		CreatedAt: b.now().Unix(),
	}
	if err := b.tickets.Open(tk); err != nil {
		b.respondText(s, i, "Failed to open the ticket, try again later.", true)
		return
	}
	b.metricsStore.Increment("tickets_opened")

	channelID := b.settings.GetOr(i.GuildID, settings.KeyTicketChannel, "")
	if channelID != "" {
		messageID, err := b.notifier.NotifyTicketOpened(channelID, &tk, false)
		if err == nil {
			if err := b.tickets.SetMessage(tk.ID, channelID, messageID); err != nil {
				log.Error("Failed to store ticket message handle", "error", err, "ticketID", tk.ID)
			}
		}
	} else {
		log.Warn("No ticket channel configured, ticket stored silently", "guildID", i.GuildID)
	}

	b.respondText(s, i, "🎫 Your ticket is in. A moderator will follow up.", true)
}

func (b *Bot) handleRecruit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := mapOptions(data.Options)
	user := interactionUser(i)

	if b.blacklist.IsListed(i.GuildID, user.ID) {
		b.respondText(s, i, "You are blacklisted and cannot post recruitment calls.", true)
		return
	}
	team, err := b.league.GetTeamByName(i.GuildID, opts.str("team"))
	if err != nil {
		b.respondText(s, i, "No team by that name.", true)
		return
	}
	if !b.isTeamCaptain(i, team.CaptainID) {
		b.respondText(s, i, "Only the captain can recruit for a team.", true)
		return
	}

	channelID := b.settings.GetOr(i.GuildID, settings.KeyRecruitChannel, b.announceChannel(i))
	_, err = b.notifier.PostRecruitment(channelID, notifier.RecruitmentPost{
		TeamName:  team.Name,
		Positions: opts.str("positions"),
		Contact:   opts.str("contact"),
		Note:      opts.str("note"),
		PostedBy:  user.Username,
	}, false)
	if err != nil {
		b.respondText(s, i, "Failed to post the recruitment call.", true)
		return
	}
	b.metricsStore.Increment("recruitment_posts")
	b.respondText(s, i, fmt.Sprintf("📣 Recruitment call for **%s** posted in <#%s>.", team.Name, channelID), true)
}

func (b *Bot) handleSettings(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	if !b.isModerator(i) {
		b.respondText(s, i, "Only moderators can change settings.", true)
		return
	}

	sub := data.Options[0]
	opts := mapOptions(sub.Options)

	switch sub.Name {
	case "set":
		key, value := opts.str("key"), opts.str("value")
		if err := b.settings.Set(i.GuildID, key, value); err != nil {
			b.respondText(s, i, "Failed to save the setting.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("Setting `%s` is now `%s`.", key, value), true)

	case "unset":
		key := opts.str("key")
		if err := b.settings.Delete(i.GuildID, key); err != nil {
			b.respondText(s, i, fmt.Sprintf("Setting `%s` was not set.", key), true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("Setting `%s` removed.", key), true)

	case "list":
		all, err := b.settings.All(i.GuildID)
		if err != nil {
			b.respondText(s, i, "Failed to load settings.", true)
			return
		}
		if len(all) == 0 {
			b.respondText(s, i, "No settings configured yet.", true)
			return
		}
		var lines string
		for key, value := range all {
			lines += fmt.Sprintf("`%s` = `%s`\n", key, value)
		}
		b.respondText(s, i, lines, true)
	}
}
