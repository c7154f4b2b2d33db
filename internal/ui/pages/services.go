package pages

import (
	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Services lists the service lines and accepted insurance. Its closing call to action takes the
// visitor back to the top of the page without leaving it.
type Services struct {
	id        string
	renderer  *markdown.Renderer
	viewState model.ViewState
}

func NewServices(renderer *markdown.Renderer) Services {
	return Services{id: zone.NewPrefix(), renderer: renderer}
}

func (m Services) Init() tea.Cmd {
	return nil
}

func (m Services) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Accept) {
			return m, command.ScrollToTop
		}
	case tea.MouseMsg:
		if leftClick(msg) && zone.Get(m.id+"start").InBounds(msg) {
			return m, command.ScrollToTop
		}
	}

	return m, nil
}

func (m Services) View() string {
	width := m.viewState.Width
	ready := styles.InfoMessage.Width(max(width, 1)).Render(lipgloss.JoinVertical(lipgloss.Center,
		"Ready to start?",
		actionButton(m.id+"start", "Back to top", true)))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(copyFor(nav.Services), width),
		"",
		m.renderer.Render(sectionFor("services-insurance"), width),
		ready)
}

func (m Services) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState

	return m, nil
}

func (m Services) Unmount() Page {
	return m
}

func (m Services) Configure(_ config.Config) Page {
	return m
}

func (m Services) Capturing() bool {
	return false
}
