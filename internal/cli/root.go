package cli

import (
	"errors"
	"fmt"
	"strings"

	"castlog/internal/activity"
	"castlog/internal/constants"
	"castlog/internal/farcaster"
	"castlog/internal/keyring"
	"castlog/internal/logger"
	"castlog/internal/models"
	"castlog/internal/storage"
)

// Context is shared state passed to every command's Run method.
type Context struct {
	Store storage.Provider

	// BaseURL overrides the Farcaster API endpoint (tests, staging).
	BaseURL string
}

// Service builds the activity service wired with a publisher when credentials
// are available. A missing keyring or missing credentials just means entries
// stay local.
func (c *Context) Service() *activity.Service {
	return activity.NewService(c.Store, c.publisher())
}

func (c *Context) publisher() activity.Publisher {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Keyring unavailable, publishing disabled", "error", err)
		}
		return nil
	}
	signerUUID, err := keyring.GetSignerUUID()
	if err != nil {
		return nil
	}
	return farcaster.NewClient(c.BaseURL, apiKey, signerUUID)
}

// Client creates a Farcaster API client for read-only calls. Errors when no
// API key is stored.
func (c *Context) Client() (*farcaster.Client, error) {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("no API key stored, run '%s login' first", constants.AppName)
		}
		return nil, err
	}
	signerUUID, _ := keyring.GetSignerUUID()
	return farcaster.NewClient(c.BaseURL, apiKey, signerUUID), nil
}

// FID returns the configured Farcaster user id.
func (c *Context) FID() (int64, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return 0, err
	}
	if settings.FID == 0 {
		return 0, fmt.Errorf("no Farcaster id configured, run '%s settings set fid <fid>'", constants.AppName)
	}
	return settings.FID, nil
}

// FormatGrid renders grid rows as an ASCII contribution chart, one line per
// weekday, weeks as columns. Used by the grid command; the TUI has its own
// colored renderer.
func FormatGrid(grid [][]models.GridCell) string {
	if len(grid) == 0 {
		return ""
	}

	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var b strings.Builder

	for day := 0; day < constants.DaysPerWeek; day++ {
		b.WriteString(fmt.Sprintf("%-4s", labels[day]))
		for _, week := range grid {
			cell := week[day]
			switch {
			case cell.Completed:
				b.WriteString("■ ")
			case cell.IsToday:
				b.WriteString("◎ ")
			case cell.IsFirstOfMonth:
				b.WriteString("□ ")
			default:
				b.WriteString("· ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
