package component

import (
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// Header is the navigation bar. Below the menu breakpoint it collapses into a toggle that expands
// into a vertical list.
type Header struct {
	id        string
	state     nav.State
	viewState model.ViewState
}

func NewHeader() Header {
	return Header{id: zone.NewPrefix()}
}

func (m Header) Init() tea.Cmd {
	return nil
}

func (m Header) Update(msg tea.Msg) (Header, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.State:
		m.state = msg
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if m.viewState.Compact && zone.Get(m.id+"toggle").InBounds(msg) {
			return m, command.ToggleMenu
		}

		if m.viewState.Compact && !m.state.MenuExpanded {
			return m, nil
		}

		for _, view := range nav.Views() {
			if zone.Get(m.linkID(view)).InBounds(msg) {
				return m, command.Navigate(view)
			}
		}
	}

	return m, nil
}

func (m Header) linkID(view nav.View) string {
	return m.id + view.String()
}

func (m Header) link(view nav.View) string {
	style := styles.NavInactive
	switch {
	case view == m.state.Active:
		style = styles.NavActive
	case view == nav.GetStarted:
		style = styles.NavCTA
	}

	return zone.Mark(m.linkID(view), style.Render(view.Label()))
}

func (m Header) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	brand := styles.Brand.Render(content.BusinessName)

	if !m.viewState.Compact {
		links := make([]string, 0, len(nav.Views())+1)
		links = append(links, brand)
		for _, view := range nav.Views() {
			links = append(links, m.link(view))
		}

		return styles.HeaderContainerStyle.Width(m.viewState.Width).
			Render(lipgloss.JoinHorizontal(lipgloss.Top, links...))
	}

	label := styles.IconMenu + " Menu"
	if m.state.MenuExpanded {
		label = "✕ Close"
	}
	toggle := zone.Mark(m.id+"toggle", styles.MenuToggle.Render(label))
	brandWidth := max(m.viewState.Width-lipgloss.Width(toggle)-1, 1)
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(brandWidth).Render(truncate.StringWithTail(brand, uint(brandWidth), "…")), //nolint:gosec
		toggle)

	if !m.state.MenuExpanded {
		return bar
	}

	items := make([]string, 0, len(nav.Views()))
	for _, view := range nav.Views() {
		items = append(items, m.link(view))
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar,
		styles.MenuList.Width(m.viewState.Width).Render(lipgloss.JoinVertical(lipgloss.Left, items...)))
}
