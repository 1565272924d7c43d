// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the signup form.
type KeyMap struct {
	// Focus
	NextField key.Binding
	PrevField key.Binding

	// Gender select
	OptionLeft  key.Binding
	OptionRight key.Binding

	// Actions
	Next  key.Binding
	Save  key.Binding
	Back  key.Binding
	Press key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),

		OptionLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev option"),
		),
		OptionRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),

		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ForStep1 disables the bindings that only apply on the second step.
func (k KeyMap) ForStep1() KeyMap {
	k.Save.SetEnabled(false)
	k.Back.SetEnabled(false)
	k.OptionLeft.SetEnabled(false)
	k.OptionRight.SetEnabled(false)
	k.Next.SetEnabled(true)
	return k
}

// ForStep2 disables Next, which has no button on the second step.
func (k KeyMap) ForStep2() KeyMap {
	k.Next.SetEnabled(false)
	k.Save.SetEnabled(true)
	k.Back.SetEnabled(true)
	k.OptionLeft.SetEnabled(true)
	k.OptionRight.SetEnabled(true)
	return k
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.OptionLeft, k.OptionRight}, // Focus
		{k.Next, k.Save, k.Back, k.Press},                       // Actions
		{k.Help, k.Quit},                                        // General
	}
}
