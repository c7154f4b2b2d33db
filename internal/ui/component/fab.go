package component

import (
	"strings"

	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var fabLabel = styles.IconPhone + " Contact us"

// FAB is the floating contact shortcut. Visibility is owned by the scroll observer and pushed in
// by the shell; a hidden FAB renders nothing and ignores input.
type FAB struct {
	id      string
	visible bool
}

func NewFAB() FAB {
	return FAB{id: zone.NewPrefix()}
}

func (m FAB) Visible() bool {
	return m.visible
}

func (m FAB) SetVisible(visible bool) FAB {
	m.visible = visible

	return m
}

func (m FAB) Update(msg tea.Msg) (FAB, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.FAB) {
			return m, command.Navigate(nav.Contact)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			zone.Get(m.id+"fab").InBounds(msg) {
			return m, command.Navigate(nav.Contact)
		}
	}

	return m, nil
}

func (m FAB) View() string {
	if !m.visible {
		return ""
	}

	return zone.Mark(m.id+"fab", styles.FAB.Render(fabLabel))
}

// Overlay pins the FAB to the bottom right corner of a rendered block.
func (m FAB) Overlay(block string, width int) string {
	fab := m.View()
	if fab == "" {
		return block
	}

	lines := strings.Split(block, "\n")

	lines[len(lines)-1] = lipgloss.PlaceHorizontal(width, lipgloss.Right, fab+" ")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
