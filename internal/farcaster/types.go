package farcaster

// Wire types for the Neynar v2 API. Only the fields the app reads are
// declared.

type castRequest struct {
	SignerUUID string      `json:"signer_uuid"`
	Text       string      `json:"text"`
	Embeds     []castEmbed `json:"embeds,omitempty"`
	ChannelID  string      `json:"channel_id,omitempty"`
}

type castEmbed struct {
	URL string `json:"url"`
}

type castResponse struct {
	Success bool `json:"success"`
	Cast    struct {
		Hash string `json:"hash"`
	} `json:"cast"`
}

type channelsResponse struct {
	Channels []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"channels"`
}

type usersResponse struct {
	Users []struct {
		FID         int64  `json:"fid"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		PfpURL      string `json:"pfp_url"`
	} `json:"users"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
