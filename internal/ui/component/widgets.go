package component

import (
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

func NewTextInputModel(placeholder string) textinput.Model {
	input := textinput.New()
	input.Cursor.Style = styles.CursorStyle
	input.CharLimit = 120
	input.Placeholder = placeholder
	input.Prompt = ""
	input.PromptStyle = styles.NoStyle
	input.TextStyle = styles.NoStyle

	return input
}

func NewTextAreaModel(placeholder string, height int) textarea.Model {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.Prompt = "│ "
	area.SetHeight(height)

	return area
}
