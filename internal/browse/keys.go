package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Vertical   key.Binding
	Horizontal key.Binding
	Header     key.Binding
	Padding    key.Binding
	Up         key.Binding
	Down       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "tab"),
			key.WithHelp("→/n", "next style"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "shift+tab"),
			key.WithHelp("←/p", "previous style"),
		),
		Vertical: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "interior vertical"),
		),
		Horizontal: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "interior horizontal"),
		),
		Header: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "header rule"),
		),
		Padding: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "padding policy"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Vertical, k.Horizontal, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Vertical, k.Horizontal, k.Header, k.Padding},
		{k.Help, k.Quit},
	}
}
