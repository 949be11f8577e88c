package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the game screen. Any other printable key is
// appended to the candidate.
type keyMap struct {
	Submit key.Binding
	Hint   key.Binding
	Clear  key.Binding
	Switch key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Hint:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
		Clear:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "clear")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "word list")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new puzzle")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Hint, k.Clear, k.Switch, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
