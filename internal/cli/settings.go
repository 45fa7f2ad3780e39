package cli

import (
	"fmt"
	"strconv"

	"castlog/internal/utils"
)

type SettingsCmd struct {
	Get SettingsGetCmd `cmd:"" help:"Show current settings." default:"1"`
	Set SettingsSetCmd `cmd:"" help:"Change a setting."`
}

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("timezone:        %s\n", settings.Timezone)
	fmt.Printf("fid:             %d\n", settings.FID)
	fmt.Printf("default-channel: %s\n", settings.DefaultChannel)
	fmt.Printf("publish:         %t\n", settings.PublishEnabled)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name (timezone, fid, default-channel, publish)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("invalid timezone: %s", c.Value)
		}
		settings.Timezone = c.Value
	case "fid":
		fid, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil || fid < 0 {
			return fmt.Errorf("invalid fid: %s", c.Value)
		}
		settings.FID = fid
	case "default-channel":
		settings.DefaultChannel = c.Value
	case "publish":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", c.Value)
		}
		settings.PublishEnabled = enabled
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
