package bot

import (
	"fmt"
	"strings"

	"pitchside/internal/notifier/discord"
	"pitchside/internal/settings"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func (b *Bot) respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error("Failed to respond to interaction", "error", err)
	}
}

// respondFormatted sends whatever a notifier Format* function produced.
func (b *Bot) respondFormatted(s *discordgo.Session, i *discordgo.InteractionCreate, formatted any, ephemeral bool) {
	data := &discordgo.InteractionResponseData{}
	switch v := formatted.(type) {
	case *discordgo.MessageEmbed:
		data.Embeds = []*discordgo.MessageEmbed{v}
	case string:
		data.Content = v
	default:
		data.Content = fmt.Sprintf("%v", v)
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error("Failed to respond to interaction", "error", err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil || user.Bot {
		return
	}

	if !b.limiter.Allow(user.ID) {
		b.metrics.IncRateLimited()
		b.respondText(s, i, "Easy there, you're sending commands too quickly. Try again in a moment.", true)
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.metrics.IncCommandsHandled()
		b.metricsStore.Increment("commands_handled")
		data := i.ApplicationCommandData()
		log.Info("Handling slash command", "command", data.Name, "userID", user.ID, "guildID", i.GuildID)

		switch data.Name {
		case "register":
			b.handleRegister(s, i, data)
		case "team":
			b.handleTeam(s, i, data)
		case "schedule":
			b.handleSchedule(s, i, data)
		case "games":
			b.handleGames(s, i)
		case "result":
			b.handleResult(s, i, data)
		case "stats":
			b.handleStats(s, i, data)
		case "leaderboard":
			b.handleLeaderboard(s, i)
		case "blacklist":
			b.handleBlacklist(s, i, data)
		case "ticket":
			b.handleTicket(s, i, data)
		case "recruit":
			b.handleRecruit(s, i, data)
		case "settings":
			b.handleSettings(s, i, data)
		default:
			b.respondText(s, i, "Unknown command.", true)
		}

	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)

	case discordgo.InteractionModalSubmit:
		b.handleModalSubmit(s, i)
	}
}

// handleComponent routes button presses by their custom ID prefix.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	prefix, id, ok := strings.Cut(customID, ":")
	if !ok {
		log.Warn("Component interaction with malformed custom ID", "customID", customID)
		return
	}
	user := interactionUser(i)

	switch prefix {
	case discord.CustomIDRefereeClaim:
		if b.blacklist.IsListed(i.GuildID, user.ID) {
			b.respondText(s, i, "You are not eligible to referee games.", true)
			return
		}
		claimed, err := b.games.ClaimRefereeSlot(id, user.ID, user.Username)
		if err != nil {
			b.respondText(s, i, "Something went wrong claiming the slot.", true)
			return
		}
		if !claimed {
			b.respondText(s, i, "Someone already took the whistle for this game.", true)
			return
		}
		b.metricsStore.Increment("referee_slots_claimed")
		b.respondText(s, i, fmt.Sprintf("🦓 <@%s> will referee this game!", user.ID), false)

	case discord.CustomIDRefereeRelease:
		if err := b.games.ReleaseRefereeSlot(id, user.ID); err != nil {
			b.respondText(s, i, "You don't hold the referee slot for this game.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("<@%s> stepped down as referee. The slot is open again.", user.ID), false)

	case discord.CustomIDTicketClose:
		if !b.isModerator(i) {
			b.respondText(s, i, "Only moderators can close tickets.", true)
			return
		}
		if err := b.tickets.Close(id, user.ID, b.now().Unix()); err != nil {
			b.respondText(s, i, "This ticket is already closed.", true)
			return
		}
		b.respondText(s, i, fmt.Sprintf("Ticket closed by <@%s>.", user.ID), false)

	default:
		log.Warn("Unhandled component interaction", "customID", customID)
	}
}

const ticketModalPrefix = "ticket_modal"

func (b *Bot) openTicketModal(s *discordgo.Session, i *discordgo.InteractionCreate, kind string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ticketModalPrefix + ":" + kind,
			Title:    "Open a ticket",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "subject",
						Label:     "Subject",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: 100,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "body",
						Label:     "Details",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: 1000,
					},
				}},
			},
		},
	})
	if err != nil {
		log.Error("Failed to open ticket modal", "error", err)
	}
}

func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	prefix, kind, ok := strings.Cut(data.CustomID, ":")
	if !ok || prefix != ticketModalPrefix {
		log.Warn("Unhandled modal submit", "customID", data.CustomID)
		return
	}

	subject := modalInput(data, "subject")
	body := modalInput(data, "body")
	b.createTicket(s, i, tickets.Kind(kind), subject, body)
}

// modalInput digs a text input value out of the modal's component tree.
func modalInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// announceChannel returns the configured announcement channel, falling back
// to the channel the interaction came from.
func (b *Bot) announceChannel(i *discordgo.InteractionCreate) string {
	return b.settings.GetOr(i.GuildID, settings.KeyAnnounceChannel, i.ChannelID)
}
