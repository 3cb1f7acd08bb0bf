package bot

import (
	"testing"
	"time"

	"pitchside/internal/blacklist"
	"pitchside/internal/league"
	"pitchside/internal/metrics"
	"pitchside/internal/notifier"
	"pitchside/internal/schedule"
	"pitchside/internal/settings"
	"pitchside/internal/tickets"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T) (*Bot, *settings.MockStore) {
	t.Helper()
	settingsMock := settings.NewMock()
	b := New(
		nil,
		Config{AppID: "app", GuildID: "G1", DefaultTZ: "EST"},
		league.NewMock(),
		schedule.NewMock(),
		blacklist.NewMock(),
		tickets.NewMock(),
		settingsMock,
		notifier.NewMock(),
		metrics.NewMock(),
		metrics.NewMockStore(),
	)
	b.now = func() time.Time { return time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC) }
	return b, settingsMock
}

func interaction(member *discordgo.Member) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID: "G1",
			Member:  member,
		},
	}
}

func TestIsModerator(t *testing.T) {
	b, settingsMock := newTestBot(t)

	// No member at all (DM) is never a moderator.
	assert.False(t, b.isModerator(interaction(nil)))

	// Administrators always pass.
	admin := &discordgo.Member{
		User:        &discordgo.User{ID: "U1"},
		Permissions: discordgo.PermissionAdministrator,
	}
	assert.True(t, b.isModerator(interaction(admin)))

	// Without a configured mod role, ordinary members are refused.
	member := &discordgo.Member{
		User:  &discordgo.User{ID: "U2"},
		Roles: []string{"R1", "R2"},
	}
	assert.False(t, b.isModerator(interaction(member)))

	// With the role configured, holders pass.
	require.NoError(t, settingsMock.Set("G1", settings.KeyModRole, "R2"))
	assert.True(t, b.isModerator(interaction(member)))

	other := &discordgo.Member{
		User:  &discordgo.User{ID: "U3"},
		Roles: []string{"R9"},
	}
	assert.False(t, b.isModerator(interaction(other)))
}

func TestIsTeamCaptain(t *testing.T) {
	b, _ := newTestBot(t)

	captain := &discordgo.Member{User: &discordgo.User{ID: "CAP"}}
	assert.True(t, b.isTeamCaptain(interaction(captain), "CAP"))

	stranger := &discordgo.Member{User: &discordgo.User{ID: "U1"}}
	assert.False(t, b.isTeamCaptain(interaction(stranger), "CAP"))

	// Moderators can act on any team.
	admin := &discordgo.Member{
		User:        &discordgo.User{ID: "U2"},
		Permissions: discordgo.PermissionAdministrator,
	}
	assert.True(t, b.isTeamCaptain(interaction(admin), "CAP"))
}

func TestMapOptions(t *testing.T) {
	opts := mapOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "when", Type: discordgo.ApplicationCommandOptionString, Value: "friday 7pm"},
		{Name: "home_score", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "12345"},
	})

	assert.Equal(t, "friday 7pm", opts.str("when"))
	assert.Equal(t, 3, opts.integer("home_score"))
	assert.Equal(t, "12345", opts.userID("player"))
	assert.True(t, opts.has("when"))
	assert.False(t, opts.has("missing"))
	assert.Equal(t, "", opts.str("missing"))
	assert.Equal(t, 0, opts.integer("missing"))
}

func TestModalInput(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "ticket_modal:SUPPORT",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "subject", Value: "broken link"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "body", Value: "the signup link 404s"},
			}},
		},
	}

	assert.Equal(t, "broken link", modalInput(data, "subject"))
	assert.Equal(t, "the signup link 404s", modalInput(data, "body"))
	assert.Equal(t, "", modalInput(data, "missing"))
}

func TestInteractionUser(t *testing.T) {
	guildUser := &discordgo.User{ID: "U1"}
	i := interaction(&discordgo.Member{User: guildUser})
	assert.Equal(t, guildUser, interactionUser(i))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "U2"}}}
	assert.Equal(t, "U2", interactionUser(dm).ID)
}

func TestResolveTimeUsesGuildTimezone(t *testing.T) {
	b, settingsMock := newTestBot(t)

	// Default hint is EST (UTC-5 in March before DST).
	resolved, err := b.resolveTime("G1", "tomorrow 7pm", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), resolved)

	require.NoError(t, settingsMock.Set("G1", settings.KeyTimezone, "UTC"))
	resolved, err = b.resolveTime("G1", "tomorrow 7pm", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 5, 19, 0, 0, 0, time.UTC), resolved)
}
