package models

// Settings represents application-wide settings
type Settings struct {
	Timezone       string `json:"timezone"`        // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	FID            int64  `json:"fid"`             // Farcaster user id, 0 if not linked
	DefaultChannel string `json:"default_channel"` // channel id used when an entry does not name one
	PublishEnabled bool   `json:"publish_enabled"` // whether new entries are cross-posted as casts
}
