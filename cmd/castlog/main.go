package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"castlog/internal/cli"
	"castlog/internal/constants"
	apperrors "castlog/internal/errors"
	"castlog/internal/keyring"
	"castlog/internal/logger"
	"castlog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a JSON file) or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use the OS keyring or .pgpass instead." type:"string" default:"~/.config/castlog/castlog.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize storage."`
	Add      cli.AddCmd      `cmd:"" help:"Log a new entry."`
	List     cli.ListCmd     `cmd:"" help:"List entries, most recent first."`
	Streak   cli.StreakCmd   `cmd:"" help:"Show the current streak."`
	Grid     cli.GridCmd     `cmd:"" help:"Show the contribution grid."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's entries and streaks."`
	Channels cli.ChannelsCmd `cmd:"" help:"List your Farcaster channels."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show your Farcaster profile."`
	Login    cli.LoginCmd    `cmd:"" help:"Store Farcaster API credentials in the OS keyring."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Remove stored credentials."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
}

// expandHome resolves a leading ~ in the config path. Connection strings are
// passed through untouched.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit logger with a contribution grid, streaks, and optional Farcaster cross-posting"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	var store storage.Provider
	configDir := filepath.Dir(expandHome(constants.DefaultConfigPath))
	if CLI.Config == "keyring" {
		// Full connection string (including password) lives in the OS keyring.
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		store = storage.NewPostgresStore(connStr)
	} else if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "Store the full connection string in the OS keyring or use a .pgpass file.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		path := expandHome(CLI.Config)
		configDir = filepath.Dir(path)
		if strings.HasSuffix(path, ".json") {
			store = storage.NewJSONStore(path)
		} else {
			store = storage.NewSQLiteStore(path)
		}
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
