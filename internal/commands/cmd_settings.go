package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
)

// SettingsCmd implements the settings command group.
type SettingsCmd struct {
	flags *Flags
	app   *pomodoro.App
}

// NewSettingsCmd creates a new settings command.
func NewSettingsCmd(flags *Flags, app *pomodoro.App) *SettingsCmd {
	return &SettingsCmd{flags: flags, app: app}
}

// Register adds the settings command to the application.
func (cmd *SettingsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "settings",
		Usage: "Show or change timer settings",
		Description: `Settings are stored durably and clamped to their allowed ranges on
every write.

Fields: focus, short-break, long-break, interval, auto-start, sound,
notifications.

Examples:
  pomodoro settings show
  pomodoro settings set focus 50
  pomodoro settings set auto-start true`,
		Commands: []*cli.Command{
			cmd.showCmd(),
			cmd.setCmd(),
		},
	})

	return app
}

func (cmd *SettingsCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the current settings",
		UsageText: "pomodoro settings show",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := cmd.app.Service.Settings()

			fmt.Printf("focus:         %d min\n", cfg.FocusMinutes)
			fmt.Printf("short-break:   %d min\n", cfg.ShortBreakMinutes)
			fmt.Printf("long-break:    %d min\n", cfg.LongBreakMinutes)
			fmt.Printf("interval:      every %d focus blocks\n", cfg.LongBreakInterval)
			fmt.Printf("auto-start:    %t\n", cfg.AutoStartNext)
			fmt.Printf("sound:         %t\n", cfg.SoundEnabled)
			fmt.Printf("notifications: %t\n", cfg.NotificationsEnabled)
			return nil
		},
	}
}

func (cmd *SettingsCmd) setCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Change one setting",
		UsageText: "pomodoro settings set <field> <value>",
		Action: func(ctx context.Context, c *cli.Command) error {
			field, value := c.Args().Get(0), c.Args().Get(1)
			if field == "" || value == "" {
				return fmt.Errorf("usage: pomodoro settings set <field> <value>")
			}

			cfg := cmd.app.Service.Settings()
			if err := apply(&cfg, field, value); err != nil {
				return err
			}

			// UpdateSettings clamps, so an out-of-range value lands on the
			// nearest bound rather than failing.
			saved, err := cmd.app.Service.UpdateSettings(ctx, cfg)
			if err != nil {
				fmt.Println(styles.Warning.Render("settings changed in memory but could not be persisted"))
			}

			fmt.Printf("%s %s\n", styles.Success.Render("updated"), describe(saved, field))
			return nil
		},
	}
}

func apply(cfg *settings.Settings, field, value string) error {
	switch field {
	case "focus", "short-break", "long-break", "interval":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", field, value)
		}
		switch field {
		case "focus":
			cfg.FocusMinutes = n
		case "short-break":
			cfg.ShortBreakMinutes = n
		case "long-break":
			cfg.LongBreakMinutes = n
		case "interval":
			cfg.LongBreakInterval = n
		}
	case "auto-start", "sound", "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", field, value)
		}
		switch field {
		case "auto-start":
			cfg.AutoStartNext = b
		case "sound":
			cfg.SoundEnabled = b
		case "notifications":
			cfg.NotificationsEnabled = b
		}
	default:
		return fmt.Errorf("unknown setting %q", field)
	}
	return nil
}

func describe(cfg settings.Settings, field string) string {
	switch field {
	case "focus":
		return fmt.Sprintf("focus = %d min", cfg.FocusMinutes)
	case "short-break":
		return fmt.Sprintf("short-break = %d min", cfg.ShortBreakMinutes)
	case "long-break":
		return fmt.Sprintf("long-break = %d min", cfg.LongBreakMinutes)
	case "interval":
		return fmt.Sprintf("interval = %d", cfg.LongBreakInterval)
	case "auto-start":
		return fmt.Sprintf("auto-start = %t", cfg.AutoStartNext)
	case "sound":
		return fmt.Sprintf("sound = %t", cfg.SoundEnabled)
	default:
		return fmt.Sprintf("notifications = %t", cfg.NotificationsEnabled)
	}
}
