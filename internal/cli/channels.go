package cli

import (
	"context"
	"fmt"
)

type ChannelsCmd struct{}

func (c *ChannelsCmd) Run(ctx *Context) error {
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

	channels, err := client.ListChannels(context.Background(), fid)
	if err != nil {
		return err
	}

	for _, ch := range channels {
		fmt.Printf("%-20s %s\n", ch.ID, ch.Name)
	}

	return nil
}
