package pages

import (
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/ui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const minCardWidth = 24

var contentSection = content.Section

// sectionFor returns the named section copy, or nothing when it is missing.
func sectionFor(name string) string {
	body, err := contentSection(name)
	if err != nil {
		return ""
	}

	return body
}

// renderCards lays cards out side by side when each one gets at least minCardWidth columns and
// stacks them otherwise.
func renderCards(cards []content.Card, width int) string {
	if len(cards) == 0 || width <= 4 {
		return ""
	}

	cardWidth := (width - (len(cards) - 1)) / len(cards)
	stacked := cardWidth < minCardWidth
	if stacked {
		cardWidth = width
	}

	boxes := make([]string, 0, len(cards)*2)
	for idx, card := range cards {
		if idx > 0 && !stacked {
			boxes = append(boxes, " ")
		}

		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.ContainerTitle.Render(card.Title),
			wordwrap.String(card.Body, max(cardWidth-4, 1)))
		boxes = append(boxes, styles.Card.Width(cardWidth-2).Render(body))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// section wraps a block of page content to the page width.
func section(width int, blocks ...string) string {
	return styles.ContentContainerStyle.Width(max(width, 1)).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// actionButton renders a clickable call to action, highlighted when it holds the keyboard focus.
func actionButton(id string, label string, focused bool) string {
	style := styles.ActionButton
	if focused {
		style = styles.HeroButton
	}

	return zone.Mark(id, style.Render(label+" →"))
}

func leftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}
