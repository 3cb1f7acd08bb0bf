package bot

import "github.com/bwmarrin/discordgo"

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func mapOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (m optionMap) str(name string) string {
	if opt, ok := m[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (m optionMap) integer(name string) int {
	if opt, ok := m[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

func (m optionMap) has(name string) bool {
	_, ok := m[name]
	return ok
}

// userID returns the raw snowflake of a user option without needing the
// session state.
func (m optionMap) userID(name string) string {
	if opt, ok := m[name]; ok {
		if v, ok := opt.Value.(string); ok {
			return v
		}
	}
	return ""
}
