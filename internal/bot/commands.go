package bot

import "github.com/bwmarrin/discordgo"

// commands defines every slash command the bot registers.
func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "register",
			Description: "Register yourself as a league player",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "position", Description: "Preferred position"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "jersey", Description: "Jersey number"},
			},
		},
		{
			Name:        "team",
			Description: "Manage teams and rosters",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "create", Description: "Create a team with you as captain",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Team name", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "tag", Description: "Short tag, e.g. RAV"},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "disband", Description: "Disband a team",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Team name", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Add a player to your team",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "team", Description: "Team name", Required: true},
						{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to add", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Remove a player from your team",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "team", Description: "Team name", Required: true},
						{Type: discordgo.ApplicationCommandOptionUser, Name: "player", Description: "Player to remove", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "roster", Description: "Show a team's roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Team name", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "List all teams"},
			},
		},
		{
			Name:        "schedule",
			Description: "Schedule and manage games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "game", Description: "Schedule a game",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "home", Description: "Home team", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "away", Description: "Away team", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "when", Description: "Kickoff, e.g. \"friday 19:30\" or \"tomorrow 7pm\"", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "find", Description: "Find a game near a time",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "when", Description: "Time to search around, e.g. \"last friday 7pm\"", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "reschedule", Description: "Move a game to a new time",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "game", Description: "Game ID (see /schedule find)", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "when", Description: "New kickoff time", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "cancel", Description: "Cancel a game",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "game", Description: "Game ID (see /schedule find)", Required: true},
					},
				},
			},
		},
		{
			Name:        "games",
			Description: "Show upcoming games",
		},
		{
			Name:        "result",
			Description: "Report a final score",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "when", Description: "When the game was, e.g. \"yesterday 7pm\"", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "home_score", Description: "Home team score", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "away_score", Description: "Away team score", Required: true},
			},
		},
		{
			Name:        "stats",
			Description: "Show a player's record",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "player", Description: "Player name (fuzzy)", Required: true},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the league leaderboard",
		},
		{
			Name:        "blacklist",
			Description: "Manage the guild blacklist (moderators only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "add", Description: "Blacklist a user",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to blacklist", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "reason", Description: "Why"},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "remove", Description: "Remove a user from the blacklist",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "User to remove", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Show the blacklist"},
			},
		},
		{
			Name:        "ticket",
			Description: "Open or manage support tickets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "open", Description: "Open a ticket",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type: discordgo.ApplicationCommandOptionString, Name: "kind", Description: "What kind of ticket",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "support", Value: "SUPPORT"},
								{Name: "registration", Value: "REGISTRATION"},
								{Name: "report", Value: "REPORT"},
							},
						},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "List open tickets (moderators only)"},
			},
		},
		{
			Name:        "recruit",
			Description: "Post a recruitment call for your team",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "team", Description: "Your team", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "positions", Description: "Positions wanted", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "contact", Description: "How to reach you", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "note", Description: "Anything else"},
			},
		},
		{
			Name:        "settings",
			Description: "Guild configuration (moderators only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "set", Description: "Set a setting",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "key", Description: "Setting key", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "value", Description: "Setting value", Required: true},
					},
				},
				{
					Type: discordgo.ApplicationCommandOptionSubCommand, Name: "unset", Description: "Remove a setting",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "key", Description: "Setting key", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Show all settings"},
			},
		},
	}
}
