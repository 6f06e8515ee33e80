package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/task"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
)

// TaskCmd implements the task command group.
type TaskCmd struct {
	flags *Flags
	app   *pomodoro.App
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags, app *pomodoro.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Description: `Task commands for the work items focus sessions are attributed to.

Examples:
  pomodoro task add "Write report"   # create a task
  pomodoro task list                 # list tasks, newest first
  pomodoro task done <id>            # toggle completion
  pomodoro task rm <id>              # delete (history keeps its reference)`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.listCmd(),
			cmd.doneCmd(),
			cmd.removeCmd(),
		},
	})

	return app
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create a task",
		UsageText: "pomodoro task add <title>",
		Action: func(ctx context.Context, c *cli.Command) error {
			t, err := cmd.app.Service.AddTask(ctx, c.Args().First())
			if err != nil {
				if errors.Is(err, task.ErrEmptyTitle) {
					return fmt.Errorf("task title cannot be empty")
				}
				return fmt.Errorf("add task: %w", err)
			}

			fmt.Printf("%s %s\n", styles.Success.Render("created"), t.ID)
			return nil
		},
	}
}

func (cmd *TaskCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks",
		UsageText: "pomodoro task list",
		Action: func(ctx context.Context, c *cli.Command) error {
			tasks, err := cmd.app.Service.Tasks(ctx)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println(styles.Subtle.Render("no tasks"))
				return nil
			}

			for _, t := range tasks {
				mark := " "
				if t.Done {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %s %s\n",
					mark,
					t.ID,
					t.Title,
					styles.Subtle.Render(fmt.Sprintf("(%d pomodoro(s))", t.Pomodoros)),
				)
			}
			return nil
		},
	}
}

func (cmd *TaskCmd) doneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Toggle a task's completion",
		UsageText: "pomodoro task done <id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("task id is required")
			}

			// Missing ids are a silent no-op.
			if err := cmd.app.Service.ToggleTaskDone(ctx, id); err != nil {
				return fmt.Errorf("toggle task: %w", err)
			}
			return nil
		},
	}
}

func (cmd *TaskCmd) removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a task",
		UsageText: "pomodoro task rm <id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("task id is required")
			}

			if err := cmd.app.Service.RemoveTask(ctx, id); err != nil {
				return fmt.Errorf("remove task: %w", err)
			}
			return nil
		},
	}
}
