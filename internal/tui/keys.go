package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Backspace key.Binding
	Advance   key.Binding
	Restart   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		Advance: key.NewBinding(
			key.WithKeys(" ", "enter"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "new words"),
		),
	}
}

type resultsKeyMap struct {
	Again key.Binding
	Quit  key.Binding
}

func defaultResultsKeyMap() resultsKeyMap {
	return resultsKeyMap{
		Again: key.NewBinding(
			key.WithKeys("enter", "r", "tab"),
			key.WithHelp("enter", "again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}
