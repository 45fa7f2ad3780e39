package models

// Channel is a Farcaster channel a cast can be posted to.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Profile is the subset of a Farcaster user profile the app displays.
type Profile struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
