package cli

import (
	"fmt"

	"castlog/internal/activity"
	"castlog/internal/constants"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := ctx.Service()
	today, err := svc.Today()
	if err != nil {
		return err
	}

	day := today.Format(constants.DateFormat)
	entries, err := ctx.Store.GetEntriesForDay(day)
	if err != nil {
		return err
	}

	daily, err := svc.Streak(activity.PolicyDaily, today)
	if err != nil {
		return err
	}
	weekly, err := svc.Streak(activity.PolicyWeekly, today)
	if err != nil {
		return err
	}

	fmt.Printf("Today (%s): %d entries\n", day, len(entries))
	for _, e := range entries {
		fmt.Printf("  - %s\n", e.Text)
	}
	fmt.Printf("\nDaily streak: %d  Weekly streak: %d\n", daily, weekly)

	return nil
}
