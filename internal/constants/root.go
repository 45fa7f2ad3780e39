package constants

import "time"

const (
	AppName           = "castlog"
	DefaultConfigPath = "~/.config/castlog/castlog.db"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// GridWindowDays is how far past today the contribution grid extends.
	GridWindowDays = 90

	// DaysPerWeek is the length of one grid row.
	DaysPerWeek = 7

	// Keyring entry names for Farcaster credentials
	KeyringAPIKeyUser     = "neynar-api-key"
	KeyringSignerUUIDUser = "neynar-signer-uuid"
	KeyringPostgresUser   = "database-connection"

	// PublishTimeout bounds a single cast publish attempt.
	PublishTimeout = 15 * time.Second

	// NeynarBaseURL is the default Farcaster API endpoint.
	NeynarBaseURL = "https://api.neynar.com"

	// ChannelLimit caps how many channels are fetched for the picker.
	ChannelLimit = 25

	// DefaultTimezone is used until the user configures one.
	DefaultTimezone = "Local"

	// CastPrefix is prepended to every published cast.
	CastPrefix = "📝 "
)
