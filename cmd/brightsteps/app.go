package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It owns no site logic, it only forwards config reloads
// into the ui and ties the lifetimes of the background goroutines to the ui.
type App struct {
	ui            UI
	config        config.Config
	configUpdates <-chan config.Config
}

func NewApp(conf config.Config, configUpdates <-chan config.Config) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Run starts the ui and blocks until it exits or ctx is cancelled.
func (app *App) Run(ctx context.Context, build ui.BuildInfo) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	view := app.createUI(groupCtx, build)

	group.Go(func() error {
		defer cancel()

		if err := view.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return errors.Join(err, errApp)
		}

		return nil
	})

	group.Go(func() error {
		app.configForwarder(groupCtx)

		return nil
	})

	return group.Wait()
}

// configForwarder sends reloaded configs to the ui.
func (app *App) configForwarder(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded")
			app.config = conf
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, build ui.BuildInfo) UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, build)
	}

	return app.ui
}
