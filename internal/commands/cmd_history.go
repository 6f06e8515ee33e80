package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
)

// HistoryCmd implements the history command group.
type HistoryCmd struct {
	flags *Flags
	app   *pomodoro.App

	exportOutput string
}

// NewHistoryCmd creates a new history command.
func NewHistoryCmd(flags *Flags, app *pomodoro.App) *HistoryCmd {
	return &HistoryCmd{flags: flags, app: app}
}

// Register adds the history command to the application.
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "history",
		Usage: "Inspect the session history",
		Description: `History commands for the append-only log of completed sessions.

Entries older than the retention window are dropped automatically.

Examples:
  pomodoro history list
  pomodoro history export --output sessions.csv`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.exportCmd(),
		},
	})

	return app
}

func (cmd *HistoryCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List recorded sessions, oldest first",
		UsageText: "pomodoro history list",
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, err := cmd.app.Service.History(ctx)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(styles.Subtle.Render("no sessions recorded"))
				return nil
			}

			for _, e := range entries {
				line := fmt.Sprintf("%s  %-11s  %4ds", e.Timestamp.Format(time.DateTime), e.Mode, e.ActualSeconds)
				if e.TaskID != "" {
					line += "  task=" + e.TaskID
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func (cmd *HistoryCmd) exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export the history as CSV",
		UsageText: "pomodoro history export [--output <file>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to a file instead of stdout",
				Destination: &cmd.exportOutput,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := os.Stdout
			if cmd.exportOutput != "" {
				f, err := os.Create(cmd.exportOutput)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := cmd.app.Service.ExportCSV(ctx, out); err != nil {
				return fmt.Errorf("export history: %w", err)
			}
			return nil
		},
	}
}
