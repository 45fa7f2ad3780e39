package cli

import (
	"fmt"
)

type GridCmd struct{}

func (c *GridCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := ctx.Service()
	today, err := svc.Today()
	if err != nil {
		return err
	}

	grid, err := svc.Grid(today)
	if err != nil {
		return err
	}

	fmt.Print(FormatGrid(grid))
	fmt.Println("\n■ logged  ◎ today  □ first of month")
	return nil
}
