package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit     key.Binding
	Help     key.Binding
	Menu     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Home     key.Binding
	About    key.Binding
	Services key.Binding
	Careers  key.Binding
	Start    key.Binding
	Contact  key.Binding
	FAB      key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Left     key.Binding
	Right    key.Binding
	Accept   key.Binding
	Back     key.Binding
	Call     key.Binding
	Email    key.Binding
	Map      key.Binding
	Copy     key.Binding
	Apply    key.Binding
	// NextAction and PrevAction move between the call to action buttons of a page.
	NextAction key.Binding
	PrevAction key.Binding
	NextItem   key.Binding
	PrevItem key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next page"),
	),
	PrevView: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev page"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	About: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "about"),
	),
	Services: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "services"),
	),
	Careers: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "careers"),
	),
	Start: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "get started"),
	),
	Contact: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "contact"),
	),
	FAB: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "contact us"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d", " "),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev testimonial"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next testimonial"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave field"),
	),
	Call: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "call"),
	),
	Email: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "email"),
	),
	Map: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open map"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy phone"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply by email"),
	),
	NextAction: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next action"),
	),
	PrevAction: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev action"),
	),
	NextItem: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevItem: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.NextView, m.Menu, m.Down, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Home, m.About, m.Services, m.Careers, m.Start, m.Contact},
		{m.NextView, m.PrevView, m.Menu, m.FAB},
		{m.Up, m.Down, m.PageUp, m.PageDown, m.Top, m.Bottom},
		{m.Left, m.Right, m.NextAction, m.PrevAction, m.Accept},
		{m.Call, m.Email, m.Map, m.Copy, m.Apply},
		{m.Help, m.Quit},
	}
}
