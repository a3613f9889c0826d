package events

import (
	"fmt"

	"github.com/fosdem/glwin/lib/input"
)

// Native window message identifiers (winuser.h).
const (
	WMSize        = 0x0005
	WMClose       = 0x0010
	WMQuit        = 0x0012
	WMKeyDown     = 0x0100
	WMKeyUp       = 0x0101
	WMSysKeyDown  = 0x0104
	WMSysKeyUp    = 0x0105
	WMMouseMove   = 0x0200
	WMLButtonDown = 0x0201
	WMLButtonUp   = 0x0202
	WMRButtonDown = 0x0204
	WMRButtonUp   = 0x0205
	WMMButtonDown = 0x0207
	WMMButtonUp   = 0x0208
	WMXButtonDown = 0x020B
	WMXButtonUp   = 0x020C
)

// Message is a raw native window message as the platform layer received it.
type Message struct {
	ID     uint32
	WParam uintptr
	LParam uintptr
}

// Kind classifies a message after translation.
type Kind uint8

const (
	Ignored Kind = iota
	KeyDown
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	Resize
	Quit
)

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case MouseMove:
		return "mouse_move"
	case Resize:
		return "resize"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is the abstract form of a Message. Which fields are meaningful
// depends on Kind.
type Event struct {
	Kind   Kind
	Key    input.Key
	Button input.MouseButton

	// X/Y is the pointer position for MouseMove, the client size for Resize.
	X, Y int

	ExitCode int
}

func loWord(v uintptr) uint16 { return uint16(v & 0xFFFF) }
func hiWord(v uintptr) uint16 { return uint16((v >> 16) & 0xFFFF) }

// Client coordinates are signed: a captured pointer can sit left of or above
// the client area.
func signedLoWord(v uintptr) int { return int(int16(loWord(v))) }
func signedHiWord(v uintptr) int { return int(int16(hiWord(v))) }

// Translate classifies m. Messages the snapshot has no use for come back as
// Ignored, unmapped keys and buttons as KeyDown/KeyUp/MouseDown/MouseUp with
// an unknown identifier.
func Translate(m Message) Event {
	switch m.ID {
	case WMKeyDown, WMSysKeyDown:
		return Event{Kind: KeyDown, Key: KeyFromVirtualKey(uint32(m.WParam), m.LParam)}
	case WMKeyUp, WMSysKeyUp:
		return Event{Kind: KeyUp, Key: KeyFromVirtualKey(uint32(m.WParam), m.LParam)}

	case WMLButtonDown:
		return Event{Kind: MouseDown, Button: input.MouseLeft}
	case WMLButtonUp:
		return Event{Kind: MouseUp, Button: input.MouseLeft}
	case WMRButtonDown:
		return Event{Kind: MouseDown, Button: input.MouseRight}
	case WMRButtonUp:
		return Event{Kind: MouseUp, Button: input.MouseRight}
	case WMMButtonDown:
		return Event{Kind: MouseDown, Button: input.MouseMiddle}
	case WMMButtonUp:
		return Event{Kind: MouseUp, Button: input.MouseMiddle}
	case WMXButtonDown:
		// side buttons have no slot
		return Event{Kind: MouseDown, Button: input.MouseUnknown}
	case WMXButtonUp:
		return Event{Kind: MouseUp, Button: input.MouseUnknown}

	case WMMouseMove:
		return Event{Kind: MouseMove, X: signedLoWord(m.LParam), Y: signedHiWord(m.LParam)}
	case WMSize:
		return Event{Kind: Resize, X: int(loWord(m.LParam)), Y: int(hiWord(m.LParam))}
	case WMQuit:
		return Event{Kind: Quit, ExitCode: int(int32(m.WParam))}
	}
	return Event{Kind: Ignored}
}
