package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Back          key.Binding
	Search        key.Binding
	CycleStatus   key.Binding
	CyclePriority key.Binding
	NewTicket     key.Binding
	DraftPriority key.Binding
	DraftCategory key.Binding
	DraftField    key.Binding
	Quit          key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	CyclePriority: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "priority"),
	),
	NewTicket: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new ticket"),
	),
	DraftPriority: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "priority"),
	),
	DraftCategory: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "category"),
	),
	DraftField: key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("↑/↓", "title/description"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Search, k.CycleStatus, k.CyclePriority, k.NewTicket, k.Back, k.Quit}
}
