package config

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	MigrationsDir   string
	Port            string
	Discord         DiscordConfig
	Turso           TursoConfig
	DefaultTimezone string
	ProcessSpec     string
}

type DiscordConfig struct {
	Token string
	AppID string
	// GuildID scopes slash-command registration to a single guild when set.
	// Empty means global registration.
	GuildID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
