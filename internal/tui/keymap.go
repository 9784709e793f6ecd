package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/jot/internal/editor"
)

// KeyMap binds the editor commands. It implements help.KeyMap.
type KeyMap struct {
	Quit      key.Binding
	Save      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Copy      key.Binding
	Cut       key.Binding
	Paste     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding
	Tab       key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Tab:       key.NewBinding(key.WithKeys("tab")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "keys")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.Undo, k.Redo, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Quit},
		{k.Undo, k.Redo},
		{k.Copy, k.Cut, k.Paste},
		{k.Help},
	}
}

// commands pairs each command binding with the event it sends.
func (k KeyMap) commands() []struct {
	binding key.Binding
	event   editor.Event
} {
	return []struct {
		binding key.Binding
		event   editor.Event
	}{
		{k.Quit, editor.Control(editor.Quit)},
		{k.Save, editor.Control(editor.Save)},
		{k.Undo, editor.Control(editor.Undo)},
		{k.Redo, editor.Control(editor.Redo)},
		{k.Copy, editor.Control(editor.Copy)},
		{k.Cut, editor.Control(editor.Cut)},
		{k.Paste, editor.Control(editor.Paste)},
		{k.Backspace, editor.Control(editor.Backspace)},
		{k.Delete, editor.Control(editor.DeleteChar)},
		{k.Enter, editor.Control(editor.Enter)},
		{k.Tab, editor.Typed("\t")},
	}
}

// motions maps keystrokes (as reported by tea.Key.Keystroke) to cursor
// motions: every direction with no modifier, shift, ctrl and ctrl+shift.
var motions = buildMotions()

func buildMotions() map[string]editor.Event {
	prefixes := map[string]editor.Modifier{
		"":            editor.NoMod,
		"shift+":      editor.Shift,
		"ctrl+":       editor.Ctrl,
		"ctrl+shift+": editor.CtrlShift,
	}
	m := make(map[string]editor.Event)
	for d := editor.Up; d <= editor.PageDown; d++ {
		for prefix, mod := range prefixes {
			m[prefix+d.String()] = editor.Motion(d, mod)
		}
	}
	return m
}

// decodeKey turns a key press into an editor event. Unbound keys that carry
// printable text become text events; anything else is ignored.
func (k KeyMap) decodeKey(msg tea.KeyPressMsg) (editor.Event, bool) {
	if ev, ok := motions[msg.Keystroke()]; ok {
		return ev, true
	}
	for _, c := range k.commands() {
		if key.Matches(msg, c.binding) {
			return c.event, true
		}
	}
	if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
		return editor.Typed(msg.Text), true
	}
	return editor.Event{}, false
}
