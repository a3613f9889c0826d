package input

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independently of the native key codes.
type Key int16

// KeyUnknown is what unmapped native codes translate to. It is deliberately
// outside [0, KeyCount) so it can never address a slot.
const KeyUnknown Key = -1

const (
	// Letters
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Top row digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyMenu

	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyGraveAccent  // `
	KeyMinus        // -
	KeyEqual        // =
	KeyLeftBracket  // [
	KeyRightBracket // ]
	KeyBackslash    // \
	KeySemicolon    // ;
	KeyApostrophe   // '
	KeyComma        // ,
	KeyPeriod       // .
	KeySlash        // /

	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpadEnter

	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNext
	KeyMediaPrevious
	KeyMediaStop
	KeyMediaPlayPause

	// KeyCount is the number of slots in a snapshot's key array.
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftControl: "LeftControl", KeyRightControl: "RightControl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyLeftSuper: "LeftSuper", KeyRightSuper: "RightSuper",
	KeyMenu: "Menu",

	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Escape", KeyBackspace: "Backspace",
	KeyDelete: "Delete", KeyTab: "Tab", KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
	KeyNumLock: "NumLock", KeyPrintScreen: "PrintScreen", KeyPause: "Pause",

	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",

	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyInsert: "Insert",

	KeyGraveAccent: "GraveAccent", KeyMinus: "Minus", KeyEqual: "Equal",
	KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket", KeyBackslash: "Backslash",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe", KeyComma: "Comma",
	KeyPeriod: "Period", KeySlash: "Slash",

	KeyNumpad0: "Numpad0", KeyNumpad1: "Numpad1", KeyNumpad2: "Numpad2", KeyNumpad3: "Numpad3",
	KeyNumpad4: "Numpad4", KeyNumpad5: "Numpad5", KeyNumpad6: "Numpad6", KeyNumpad7: "Numpad7",
	KeyNumpad8: "Numpad8", KeyNumpad9: "Numpad9",
	KeyNumpadDecimal: "NumpadDecimal", KeyNumpadDivide: "NumpadDivide",
	KeyNumpadMultiply: "NumpadMultiply", KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadAdd: "NumpadAdd", KeyNumpadEnter: "NumpadEnter",

	KeyVolumeMute: "VolumeMute", KeyVolumeDown: "VolumeDown", KeyVolumeUp: "VolumeUp",
	KeyMediaNext: "MediaNext", KeyMediaPrevious: "MediaPrevious",
	KeyMediaStop: "MediaStop", KeyMediaPlayPause: "MediaPlayPause",
}

// Valid reports whether k addresses a slot in the key array.
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

func (k Key) String() string {
	if !k.Valid() {
		if k == KeyUnknown {
			return "Unknown"
		}
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// KeyByName looks a key up by its String form, ignoring case.
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k), true
		}
	}
	return KeyUnknown, false
}

// MouseButton identifies one of the three tracked mouse buttons.
type MouseButton int8

const MouseUnknown MouseButton = -1

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	MouseButtonCount
)

func (b MouseButton) Valid() bool {
	return b >= 0 && b < MouseButtonCount
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}
