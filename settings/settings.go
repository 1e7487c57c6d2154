package settings

const (
	// Env keys for the optional Discord announcement, combined with
	// Prefix by EnvKey.
	DiscordTokenKey   = "DISCORD_TOKEN"
	DiscordChannelKey = "DISCORD_CHANNEL_ID"

	DiscordMaxMessageLength = 2000

	// Discord collapses empty messages, so blank separator lines are
	// sent as a zero-width space.
	WhiteSpaceChar = "​"
)
