package bot

import (
	"pitchside/internal/settings"

	"github.com/bwmarrin/discordgo"
)

// isModerator reports whether the interaction's member may run privileged
// commands: either a server administrator or a holder of the configured mod
// role.
func (b *Bot) isModerator(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	modRole := b.settings.GetOr(i.GuildID, settings.KeyModRole, "")
	if modRole == "" {
		return false
	}
	return hasRole(i.Member.Roles, modRole)
}

// isTeamCaptain reports whether the user captains the team, falling back to
// moderator rights so admins can fix rosters.
func (b *Bot) isTeamCaptain(i *discordgo.InteractionCreate, captainID string) bool {
	if i.Member != nil && i.Member.User != nil && i.Member.User.ID == captainID {
		return true
	}
	return b.isModerator(i)
}

func hasRole(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}
	return false
}
