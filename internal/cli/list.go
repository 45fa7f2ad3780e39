package cli

import (
	"fmt"
)

type ListCmd struct {
	Limit int `help:"Maximum number of entries to show (0 = all)." default:"0"`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", e.Date, e.Text)
		if e.ImageURL != "" {
			line += " [image]"
		}
		if e.Channel != "" {
			line += fmt.Sprintf(" (/%s)", e.Channel)
		}
		fmt.Println(line)
	}

	return nil
}
