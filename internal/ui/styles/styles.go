package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4a340")

	Navy      = lipgloss.Color("#1f3a5f")
	Teal      = lipgloss.Color("#2a9d8f")
	TealLight = lipgloss.Color("#8fd3c9")
	Sand      = lipgloss.Color("#e9c46a")
	Coral     = lipgloss.Color("#e76f51")
	Gray      = lipgloss.Color("#5c6370")
	GrayDark  = lipgloss.Color("#2f3030")
	White     = lipgloss.Color("#eeeeee")
	Black     = lipgloss.Color("#111111")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Teal).Padding(0, 1)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center).Foreground(Gray)

	Brand       = lipgloss.NewStyle().Bold(true).Foreground(Teal).PaddingRight(2)
	NavInactive = lipgloss.NewStyle().Foreground(White).PaddingLeft(1).PaddingRight(1)
	NavActive   = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(TealLight).PaddingLeft(1).PaddingRight(1)
	NavCTA      = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Accent).PaddingLeft(1).PaddingRight(1)
	MenuToggle  = lipgloss.NewStyle().Bold(true).Foreground(Accent).PaddingLeft(1).PaddingRight(1)
	MenuList    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(Gray)

	FooterLink    = lipgloss.NewStyle().Foreground(TealLight).PaddingLeft(1).PaddingRight(1)
	FooterContact = lipgloss.NewStyle().Foreground(Gray)

	FAB = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Coral).Padding(0, 2)

	HeroButton   = lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Accent).Padding(0, 2).MarginLeft(2)
	ActionButton = lipgloss.NewStyle().Bold(true).Foreground(Accent).Padding(0, 2).MarginLeft(2)

	Card = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(TealLight).Padding(0, 1)

	TestimonialText   = lipgloss.NewStyle().Italic(true).Foreground(White)
	TestimonialAuthor = lipgloss.NewStyle().Bold(true).Foreground(Sand).Align(lipgloss.Right)
	IndicatorActive   = lipgloss.NewStyle().Foreground(Teal).Bold(true)
	IndicatorInactive = lipgloss.NewStyle().Foreground(Gray)

	FocusedStyle = lipgloss.NewStyle().Foreground(Accent)
	BlurredStyle = lipgloss.NewStyle().Foreground(Gray)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	FieldLabel   = lipgloss.NewStyle().Foreground(TealLight).Width(18)

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Black).Background(Accent).Padding(0, 1).Render("Submit")
	BlurredSubmitButton = lipgloss.NewStyle().Foreground(Gray).Padding(0, 1).Render("Submit")

	PanelLabel = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Right).Width(12)
	PanelValue = lipgloss.NewStyle().Foreground(White)
	PanelKey   = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	PostingTitle = lipgloss.NewStyle().Bold(true).Foreground(White)
	PostingMeta  = lipgloss.NewStyle().Foreground(Gray)

	StatusError   = lipgloss.NewStyle().Foreground(Coral).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Teal).Bold(true).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Gray).PaddingRight(2)

	HelpBox = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1).Margin(0, 1)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1).Foreground(White)

	IconPhone = "☎"
	IconMail  = "✉"
	IconMap   = "⌖"
	IconMenu  = "☰"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, " "+title+" ", border.Top)

	return border
}
