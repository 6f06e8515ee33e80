package pomodoro

import (
	"github.com/Ibra084/CleanPomodoroApp/internal/core/config"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/eventbus"
)

// App bundles the long-lived dependencies handed to the commands. It is
// populated in the CLI Before hook, after the database and stores exist.
type App struct {
	Service *Service
	Bus     *eventbus.EventBus
	Config  *config.Config
}

// NewApp creates a new application container.
func NewApp(service *Service, bus *eventbus.EventBus, cfg *config.Config) *App {
	return &App{
		Service: service,
		Bus:     bus,
		Config:  cfg,
	}
}
