package events

import (
	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/metrics"
)

// Translator applies native messages to a snapshot.
type Translator struct {
	log *log.Logger
}

func NewTranslator(l *log.Logger) *Translator {
	if l == nil {
		l = log.Discard()
	}
	return &Translator{log: l.With("events")}
}

// Dispatch translates m and applies it to snap. It reports quit with the
// exit code carried by the message when m asks the loop to end.
//
// Keys and buttons without an identifier are dropped without error.
func (t *Translator) Dispatch(snap *input.Snapshot, m Message) (quit bool, exitCode int) {
	ev := Translate(m)
	metrics.Messages.WithLabelValues(ev.Kind.String()).Inc()

	switch ev.Kind {
	case KeyDown, KeyUp:
		if !ev.Key.Valid() {
			t.drop(m)
			return false, 0
		}
		if ev.Kind == KeyDown {
			snap.PressKey(ev.Key)
		} else {
			snap.ReleaseKey(ev.Key)
		}
	case MouseDown, MouseUp:
		if !ev.Button.Valid() {
			t.drop(m)
			return false, 0
		}
		if ev.Kind == MouseDown {
			snap.PressMouse(ev.Button)
		} else {
			snap.ReleaseMouse(ev.Button)
		}
	case MouseMove:
		snap.MoveMouse(ev.X, ev.Y)
	case Resize:
		snap.Resize(ev.X, ev.Y)
		t.log.Debug("client area resized to %dx%d", ev.X, ev.Y)
	case Quit:
		return true, ev.ExitCode
	}
	return false, 0
}

func (t *Translator) drop(m Message) {
	metrics.InputDropped.Inc()
	t.log.Trace("dropping unmapped input message %#x (wparam %#x)", m.ID, m.WParam)
}
