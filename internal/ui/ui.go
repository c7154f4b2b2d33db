package ui

import (
	"context"
	"errors"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/pages"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

// BuildInfo is shown on the help overlay.
type BuildInfo struct {
	Version    string
	Date       string
	Commit     string
	ConfigPath string
	LogPath    string
}

type UI struct {
	program *tea.Program
	root    *rootModel
}

func New(ctx context.Context, conf config.Config, build BuildInfo) *UI {
	zone.NewGlobal()

	renderer := markdown.New(conf.GlamourStyle)
	root := newRootModel(conf, pages.NewRegistry(conf, renderer), renderer, build)

	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithFPS(conf.FPS),
	}
	if conf.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	if conf.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	return &UI{
		program: tea.NewProgram(root, options...),
		root:    root,
	}
}

func (t UI) Run() error {
	defer t.root.teardown()

	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
