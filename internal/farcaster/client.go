// Package farcaster is a thin client for a Neynar-style Farcaster API. It
// covers the three calls the app makes: publishing a cast, listing a user's
// channels, and fetching a profile. Failures here are reported to the caller
// and never affect the local entry ledger.
package farcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"castlog/internal/constants"
	"castlog/internal/models"
)

// ErrNotFound is returned when a requested user does not exist.
var ErrNotFound = errors.New("user not found")

// PublishError wraps a failed cast publish so callers can distinguish it from
// local ledger errors.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish cast: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// Client is an HTTP client for the Neynar v2 Farcaster API.
type Client struct {
	baseURL    string
	apiKey     string
	signerUUID string
	httpClient *http.Client
}

// NewClient creates a client. signerUUID is only required for publishing.
func NewClient(baseURL, apiKey, signerUUID string) *Client {
	if baseURL == "" {
		baseURL = constants.NeynarBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		signerUUID: signerUUID,
		httpClient: &http.Client{
			Timeout: constants.PublishTimeout,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("farcaster API error (%d) on %s %s: %s", resp.StatusCode, method, path, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d on %s %s: %s", resp.StatusCode, method, path, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// PublishCast posts an entry's text as a cast, with an optional image embed
// and channel. Returns the cast hash.
func (c *Client) PublishCast(ctx context.Context, text, imageURL, channel string) (string, error) {
	req := castRequest{
		SignerUUID: c.signerUUID,
		Text:       constants.CastPrefix + text,
		ChannelID:  channel,
	}
	if imageURL != "" {
		req.Embeds = []castEmbed{{URL: imageURL}}
	}

	var resp castResponse
	if err := c.do(ctx, http.MethodPost, "/v2/farcaster/cast", req, &resp); err != nil {
		return "", &PublishError{Err: err}
	}

	return resp.Cast.Hash, nil
}

// ListChannels fetches the channels a user can cast to. A synthetic "Home"
// channel is always first so a cast can go to the user's main feed.
func (c *Client) ListChannels(ctx context.Context, fid int64) ([]models.Channel, error) {
	path := fmt.Sprintf("/v2/farcaster/user/channels?fid=%d&limit=%d", fid, constants.ChannelLimit)

	var resp channelsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	channels := []models.Channel{{ID: "home", Name: "Home"}}
	for _, ch := range resp.Channels {
		channels = append(channels, models.Channel{ID: ch.ID, Name: ch.Name})
	}

	return channels, nil
}

// UserProfile fetches a user's profile by fid.
func (c *Client) UserProfile(ctx context.Context, fid int64) (models.Profile, error) {
	path := "/v2/farcaster/user/bulk?fids=" + strconv.FormatInt(fid, 10)

	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return models.Profile{}, err
	}
	if len(resp.Users) == 0 {
		return models.Profile{}, ErrNotFound
	}

	u := resp.Users[0]
	displayName := u.DisplayName
	if displayName == "" {
		displayName = u.Username
	}

	return models.Profile{
		FID:         u.FID,
		Username:    u.Username,
		DisplayName: displayName,
		AvatarURL:   u.PfpURL,
	}, nil
}

// WithTimeout overrides the default request timeout. Useful in tests.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}
