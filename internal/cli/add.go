package cli

import (
	"context"
	"fmt"

	"castlog/internal/activity"
)

type AddCmd struct {
	Text      string `arg:"" help:"Entry text."`
	Image     string `help:"URL of an attached image." default:""`
	Channel   string `help:"Channel to cast to (default: configured channel)." default:""`
	NoPublish bool   `help:"Record the entry locally without casting."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	svc := ctx.Service()
	entry, results, err := svc.Append(context.Background(), activity.AppendInput{
		Text:     c.Text,
		ImageURL: c.Image,
		Channel:  c.Channel,
		Publish:  settings.PublishEnabled && !c.NoPublish,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged entry for %s\n", entry.Date)

	// The append is already committed; a publish failure is only a warning.
	if results != nil {
		res := <-results
		if res.Err != nil {
			fmt.Printf("Warning: cast not published: %v\n", res.Err)
		} else {
			fmt.Printf("Cast published (%s)\n", res.CastHash)
		}
	}

	return nil
}
