package model

import (
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Container draws content inside a rounded box with title embedded in the top border.
func Container(title string, width int, content string, active bool) string {
	if width <= 4 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width - 2).
		Render(content)
}
