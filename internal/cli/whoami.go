package cli

import (
	"context"
	"fmt"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fid, err := ctx.FID()
	if err != nil {
		return err
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}

	profile, err := client.UserProfile(context.Background(), fid)
	if err != nil {
		return err
	}

	fmt.Printf("%s (@%s, fid %d)\n", profile.DisplayName, profile.Username, profile.FID)
	return nil
}
