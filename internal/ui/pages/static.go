package pages

import (
	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	tea "github.com/charmbracelet/bubbletea"
)

var contentPage = content.Page

// Static renders the markdown copy of a view and nothing else.
type Static struct {
	view      nav.View
	renderer  *markdown.Renderer
	viewState model.ViewState
}

func NewStatic(view nav.View, renderer *markdown.Renderer) Static {
	return Static{view: view, renderer: renderer}
}

func (m Static) Init() tea.Cmd {
	return nil
}

func (m Static) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if viewState, ok := msg.(model.ViewState); ok {
		m.viewState = viewState
	}

	return m, nil
}

func (m Static) View() string {
	return m.renderer.Render(copyFor(m.view), m.viewState.Width)
}

func (m Static) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState

	return m, nil
}

func (m Static) Unmount() Page {
	return m
}

func (m Static) Configure(_ config.Config) Page {
	return m
}

func (m Static) Capturing() bool {
	return false
}
