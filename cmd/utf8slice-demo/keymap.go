package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type keyMap struct {
	BeginLeft, BeginRight key.Binding
	EndLeft, EndRight     key.Binding
	NextSample            key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		BeginLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "begin left")),
		BeginRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "begin right")),

		// Portable end movement: terminals vary between shift+arrows and brackets.
		EndLeft:  key.NewBinding(key.WithKeys("shift+left", "["), key.WithHelp("shift+←/[", "end left")),
		EndRight: key.NewBinding(key.WithKeys("shift+right", "]"), key.WithHelp("shift+→/]", "end right")),

		NextSample: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next sample")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}
