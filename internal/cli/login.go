package cli

import (
	"fmt"

	"castlog/internal/keyring"
)

type LoginCmd struct {
	APIKey     string `help:"Neynar API key." required:""`
	SignerUUID string `help:"Signer UUID used to publish casts." default:""`
	FID        int64  `help:"Your Farcaster id." default:"0"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}

	if err := keyring.SetAPIKey(c.APIKey); err != nil {
		return err
	}
	if c.SignerUUID != "" {
		if err := keyring.SetSignerUUID(c.SignerUUID); err != nil {
			return err
		}
	}

	if c.FID != 0 {
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		settings.FID = c.FID
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
	}

	fmt.Println("Credentials stored in OS keyring.")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAll(); err != nil {
		return err
	}
	fmt.Println("Credentials removed from OS keyring.")
	return nil
}
