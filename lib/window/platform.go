package window

import "github.com/fosdem/glwin/lib/events"

// Handle is a native window handle.
type Handle uintptr

// Style selects the window frame.
type Style uint8

const (
	// Decorated is a normal titled, resizable frame.
	Decorated Style = iota
	// Borderless is an undecorated topmost popup, used for full screen.
	Borderless
)

func (s Style) String() string {
	if s == Borderless {
		return "borderless"
	}
	return "decorated"
}

// DispatchFunc receives each drained message. Returning false stops the
// drain; the remaining messages stay queued.
type DispatchFunc func(events.Message) bool

// Platform is the native windowing API a session drives.
type Platform interface {
	// RegisterClass and UnregisterClass manage the process-wide window
	// class. The registry calls them around the first and last session.
	RegisterClass() error
	UnregisterClass() error

	ScreenSize() (width, height int)
	CreateWindow(title string, width, height int, style Style) (Handle, error)
	ShowWindow(h Handle)
	DestroyWindow(h Handle) error

	// DrainEvents hands every message already queued for h to dispatch and
	// returns when the queue is empty. It never waits for new messages.
	DrainEvents(h Handle, dispatch DispatchFunc)

	// ShowCursor changes the process-wide cursor visibility.
	ShowCursor(visible bool)
}
