package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding; it doubles as the help.KeyMap for the
// help view.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Dismiss   key.Binding
	More      key.Binding
	Details   key.Binding
	Search    key.Binding
	Submit    key.Binding
	Leave     key.Binding
	Help      key.Binding
	HelpPager key.Binding
	Activity  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Dismiss:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "dismiss")),
		More:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more")),
		Details:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:    key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "search")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Leave:     key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "results")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Activity:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "activity")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Dismiss, k.More, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Dismiss, k.More, k.Details, k.Activity},
		{k.Search, k.Submit, k.Leave},
		{k.Help, k.HelpPager, k.Quit, k.ForceQuit},
	}
}

// SearchKeys is the help.KeyMap shown while the search input has focus
type SearchKeys struct {
	KeyMap
}

// ShortHelp implements help.KeyMap
func (k SearchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave, k.ForceQuit}
}

// FullHelp implements help.KeyMap
func (k SearchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
