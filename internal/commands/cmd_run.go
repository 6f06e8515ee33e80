package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/eventbus"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/notify"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro/sweep"
)

// RunCmd implements the timer loop command.
type RunCmd struct {
	flags *Flags
	app   *pomodoro.App

	taskID string
	silent bool
}

// NewRunCmd creates a new run command.
func NewRunCmd(flags *Flags, app *pomodoro.App) *RunCmd {
	return &RunCmd{flags: flags, app: app}
}

// Register adds the run command to the application.
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run the pomodoro timer",
		UsageText: "pomodoro run [--task <id>]",
		Description: `Starts the focus countdown and keeps cycling through focus and break
sessions until interrupted with Ctrl-C.

Completed sessions are recorded to the local history; focus sessions are
attributed to the selected task, if any.`,
		Flags: cmd.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return cmd.Run(ctx, c)
		},
	})

	return app
}

// Flags returns the run command's flags, also registered on the root
// command since run is the default action.
func (cmd *RunCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "task",
			Aliases:     []string{"t"},
			Usage:       "task id to attribute focus sessions to",
			Destination: &cmd.taskID,
		},
		&cli.BoolFlag{
			Name:        "silent",
			Usage:       "suppress the countdown display",
			Destination: &cmd.silent,
		},
	}
}

// Run executes the timer loop until the context is cancelled.
func (cmd *RunCmd) Run(ctx context.Context, _ *cli.Command) error {
	svc := cmd.app.Service

	engine := timer.NewEngine(svc.Settings, svc)

	if cmd.taskID != "" {
		// Attribution to an unknown task is allowed but almost certainly a
		// typo, so say so up front.
		if _, err := svc.Task(ctx, cmd.taskID); err != nil {
			fmt.Fprintln(os.Stderr, styles.Warning.Render(fmt.Sprintf("task %q not found; focus sessions will carry a dangling reference", cmd.taskID)))
		}
		engine.SelectTask(cmd.taskID)
	}

	router := notify.NewRouter(cmd.app.Bus, notify.BellNotifier{W: os.Stdout}, svc.Settings)
	router.Register()

	runCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go sweep.Start(runCtx, svc, cmd.app.Config.Timer.SweepInterval)

	engine.Start()
	cmd.app.Bus.PublishSessionStarted(eventbus.SessionStartedPayload{Mode: engine.Snapshot().Mode})

	onTick := cmd.render
	if cmd.silent {
		onTick = nil
	}

	log.Info().Str("mode", string(engine.Snapshot().Mode)).Msg("timer started")
	timer.Run(runCtx, engine, cmd.app.Config.Timer.TickInterval, onTick)

	// Ctrl-C pauses rather than skips: an interrupted session records
	// nothing.
	engine.Pause()
	fmt.Println()
	fmt.Println(styles.Subtle.Render("timer stopped"))

	return nil
}

func (cmd *RunCmd) render(st timer.State) {
	status := "paused"
	if st.Running {
		status = "running"
	}
	fmt.Printf("\r%s  %s  %02d:%02d (%s)  ",
		styles.Title.Render("pomodoro"),
		st.Mode.Label(),
		st.RemainingSeconds/60,
		st.RemainingSeconds%60,
		status,
	)
}
