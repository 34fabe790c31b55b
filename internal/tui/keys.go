package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/anuvad/internal/locale"
)

// keyMap holds the widget's bindings. Everything else goes to the editor.
type keyMap struct {
	Translate key.Binding
	Copy      key.Binding
	Theme     key.Binding
	Quit      key.Binding
}

func newKeyMap(msgs *locale.Catalog) keyMap {
	return keyMap{
		Translate: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", msgs.T(locale.HelpTranslate))),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", msgs.T(locale.HelpCopy))),
		Theme:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", msgs.T(locale.HelpTheme))),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", msgs.T(locale.HelpQuit))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Translate, k.Copy, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
