package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/stats"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
	"github.com/Ibra084/CleanPomodoroApp/internal/pomodoro"
)

const chartMaxWidth = 40

// StatsCmd implements the stats command.
type StatsCmd struct {
	flags *Flags
	app   *pomodoro.App
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *pomodoro.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show focus statistics",
		UsageText: "pomodoro stats",
		Description: `Shows today's focus minutes and completed blocks, the consecutive-day
streak, and a 7-day focus chart derived from the local history.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	report, err := cmd.app.Service.Stats(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	fmt.Println(styles.Title.Render("Today"))
	fmt.Printf("  %d min focused over %d block(s)\n", report.Today.Minutes, report.Today.Blocks)
	fmt.Printf("  streak: %d day(s)\n", report.Streak)
	fmt.Println()
	fmt.Println(styles.Title.Render("Last 7 days"))
	renderChart(report.Week)

	return nil
}

func renderChart(week []stats.DayTotal) {
	max := 0
	for _, day := range week {
		if day.Minutes > max {
			max = day.Minutes
		}
	}

	for _, day := range week {
		width := 0
		if max > 0 {
			width = day.Minutes * chartMaxWidth / max
		}
		if day.Minutes > 0 && width == 0 {
			width = 1
		}
		fmt.Printf("  %s %s %s\n",
			styles.Subtle.Render(day.Label),
			styles.Bar(width),
			styles.Subtle.Render(fmt.Sprintf("%dm", day.Minutes)),
		)
	}
}
