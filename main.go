package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/commands"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/config"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/eventbus"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/logging"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/db"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/stores"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
	"github.com/Ibra084/CleanPomodoroApp/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		pomoApp   = &pomodoro.App{}
		database  *db.DB
		bus       *eventbus.EventBus
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "pomodoro",
		Usage:     "Focus timer with session history and stats",
		UsageText: "pomodoro [global options] command [command options]",
		Description: `Pomodoro runs a focus/break cycle on one-second ticks, records every
completed session, and keeps per-task pomodoro counts plus daily stats.

Run 'pomodoro' with no arguments to start a timer.
Run 'pomodoro stats' for today's minutes, streak, and the 7-day chart.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("POMODORO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/pomodoro.log)",
				Sources:     cli.EnvVars("POMODORO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("POMODORO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("POMODORO_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/pomodoro.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "pomodoro.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			dbOpts := db.OpenOptions{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				BusyTimeout:  cfg.Database.BusyTimeout,
			}
			database, err = db.Open(cfg.DataDir, dbOpts)
			if err != nil && stores.IsCorruptionError(err) {
				log.Error().Err(err).Msg("database corrupted, moving it aside and starting fresh")
				if rerr := stores.RecoverFromCorruption(cfg.DataDir); rerr != nil {
					return ctx, fmt.Errorf("recover database: %w", rerr)
				}
				database, err = db.Open(cfg.DataDir, dbOpts)
			}
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			historyStore := stores.NewHistoryStore(database)
			taskStore := stores.NewTaskStore(database)
			kvStore := stores.NewKVStore(database)
			settingsStore := stores.NewSettingsStore(kvStore, cfg.Timer.Defaults)

			bus = eventbus.New(eventbus.DefaultBuffer)
			eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
			bus.Start()

			svc := pomodoro.NewService(historyStore, taskStore, settingsStore, bus, logging.Component("pomodoro"))
			svc.Init(ctx)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*pomoApp = *pomodoro.NewApp(svc, bus, cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if bus != nil {
				bus.Close()
			}

			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	runCmd := commands.NewRunCmd(flags, pomoApp)

	app = runCmd.Register(app)
	app = commands.NewStatsCmd(flags, pomoApp).Register(app)
	app = commands.NewTaskCmd(flags, pomoApp).Register(app)
	app = commands.NewHistoryCmd(flags, pomoApp).Register(app)
	app = commands.NewSettingsCmd(flags, pomoApp).Register(app)
	app = commands.NewPruneCmd(flags, pomoApp).Register(app)

	// Register run flags on root command
	app.Flags = append(app.Flags, runCmd.Flags()...)

	// Run the timer when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pomodoro --help' for usage", c.Args().First())
		}
		return runCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
