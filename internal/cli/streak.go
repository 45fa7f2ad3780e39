package cli

import (
	"fmt"

	"castlog/internal/activity"
)

type StreakCmd struct {
	Weekly bool `help:"Count consecutive active weeks instead of days."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := ctx.Service()
	today, err := svc.Today()
	if err != nil {
		return err
	}

	policy := activity.PolicyDaily
	unit := "day"
	if c.Weekly {
		policy = activity.PolicyWeekly
		unit = "week"
	}

	streak, err := svc.Streak(policy, today)
	if err != nil {
		return err
	}

	switch streak {
	case 0:
		fmt.Println("No streak yet. Log an entry to begin one.")
	case 1:
		fmt.Printf("🔥 1 %s streak\n", unit)
	default:
		fmt.Printf("🔥 %d %s streak\n", streak, unit)
	}

	return nil
}
