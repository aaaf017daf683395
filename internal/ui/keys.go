package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"duelist/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Add       key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	DeleteAll key.Binding
	Filter    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Add:       key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Up:        key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:      key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Edit:      key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit")),
		Delete:    key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		DeleteAll: key.NewBinding(key.WithKeys(k.DeleteAll), key.WithHelp(k.DeleteAll, "delete all")),
		Filter:    key.NewBinding(key.WithKeys(k.Filter), key.WithHelp(k.Filter, "filter expired")),
		Confirm:   key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "save")),
		Cancel:    key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		NextField: key.NewBinding(key.WithKeys(k.NextField), key.WithHelp(k.NextField, "next field")),
		PrevField: key.NewBinding(key.WithKeys(k.PrevField), key.WithHelp(k.PrevField, "prev field")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.DeleteAll, k.Filter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Confirm, k.NextField, k.PrevField},
		{k.Delete, k.DeleteAll, k.Filter, k.Cancel, k.Quit},
	}
}

// formKeys is the help shown while the add form or a row edit has focus.
type formKeys struct {
	keyMap
	cancel bool
}

func (k formKeys) ShortHelp() []key.Binding {
	b := []key.Binding{k.Confirm, k.NextField, k.PrevField}
	if k.cancel {
		b = append(b, k.Cancel)
	}
	return b
}
