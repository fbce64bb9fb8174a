package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Up, Down key.Binding

	Toggle, Create, Move, Back key.Binding
	Cancel, Update, Retry      key.Binding
	Help, Quit                 key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev list")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next list")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select list")),
		Create: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create a new list")),
		Move:   key.NewBinding(key.WithKeys("enter", ">"), key.WithHelp("enter/>", "move to new list")),
		Back:   key.NewBinding(key.WithKeys("enter", "<", "b"), key.WithHelp("enter/</b", "move back")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Update: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// setMode enables only the bindings that do something in the current state,
// so the help footer stays honest.
func (k *keyMap) setMode(ready, creating, failed, onStaging bool) {
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Up, &k.Down, &k.Toggle} {
		b.SetEnabled(ready)
	}
	k.Create.SetEnabled(ready && !creating)
	k.Move.SetEnabled(creating && !onStaging)
	k.Back.SetEnabled(creating && onStaging)
	k.Cancel.SetEnabled(creating)
	k.Update.SetEnabled(creating)
	k.Retry.SetEnabled(failed)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Create, k.Move, k.Back, k.Update, k.Cancel, k.Retry, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.Create, k.Move, k.Back},
		{k.Update, k.Cancel, k.Retry},
		{k.Help, k.Quit},
	}
}
