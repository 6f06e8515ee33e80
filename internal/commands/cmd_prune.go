package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/history"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
)

// PruneCmd implements the prune command.
type PruneCmd struct {
	flags *Flags
	app   *pomodoro.App
}

// NewPruneCmd creates a new prune command.
func NewPruneCmd(flags *Flags, app *pomodoro.App) *PruneCmd {
	return &PruneCmd{flags: flags, app: app}
}

// Register adds the prune command to the application.
func (cmd *PruneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "prune",
		Usage: "Remove history entries older than the retention window",
		Description: fmt.Sprintf(`Deletes session history older than %d days. The same cleanup runs
automatically while a timer is active, so this is only needed to
reclaim space immediately.`, history.RetentionDays),
		Action: func(ctx context.Context, c *cli.Command) error {
			removed, err := cmd.app.Service.Prune(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("prune history: %w", err)
			}

			if removed == 0 {
				fmt.Println(styles.Subtle.Render("nothing to prune"))
				return nil
			}

			fmt.Printf("%s removed %d entr%s\n", styles.Success.Render("pruned"), removed, plural(removed, "y", "ies"))
			return nil
		},
	})

	return app
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
