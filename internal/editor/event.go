package editor

import "github.com/rs/zerolog/log"

// Command is a named control key.
type Command uint8

const (
	Quit Command = iota
	Save
	Undo
	Redo
	Copy
	Cut
	Paste
	Backspace
	DeleteChar
	Enter
)

// EventKind discriminates Event.
type EventKind uint8

const (
	TextEvent EventKind = iota
	CommandEvent
	MotionEvent
)

// Event is one decoded key press. Only the fields for its Kind are set.
type Event struct {
	Kind      EventKind
	Text      string
	Command   Command
	Direction Direction
	Modifier  Modifier
}

// Typed returns a text event.
func Typed(s string) Event { return Event{Kind: TextEvent, Text: s} }

// Control returns a command event.
func Control(c Command) Event { return Event{Kind: CommandEvent, Command: c} }

// Motion returns a motion event.
func Motion(d Direction, m Modifier) Event {
	return Event{Kind: MotionEvent, Direction: d, Modifier: m}
}

// Outcome tells the caller what the event needs beyond the editor itself.
type Outcome uint8

const (
	Handled Outcome = iota
	QuitRequested
	SaveRequested
	ClipboardChanged
)

// Handle processes one event to completion.
func (e *Editor) Handle(ev Event) Outcome {
	switch ev.Kind {
	case TextEvent:
		e.InsertText(ev.Text)
	case MotionEvent:
		e.Move(ev.Direction, ev.Modifier)
	case CommandEvent:
		return e.command(ev.Command)
	default:
		log.Debug().Uint8("kind", uint8(ev.Kind)).Msg("ignoring unknown event")
	}
	return Handled
}

func (e *Editor) command(c Command) Outcome {
	switch c {
	case Quit:
		return QuitRequested
	case Save:
		return SaveRequested
	case Undo:
		e.Undo()
	case Redo:
		e.Redo()
	case Copy:
		if e.Copy() {
			return ClipboardChanged
		}
	case Cut:
		if e.Cut() {
			return ClipboardChanged
		}
	case Paste:
		e.Paste()
	case Backspace:
		e.Backspace()
	case DeleteChar:
		e.DeleteForward()
	case Enter:
		e.Enter()
	}
	return Handled
}
