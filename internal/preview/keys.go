package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause  key.Binding
	Line   key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Line:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next line")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Line},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}
