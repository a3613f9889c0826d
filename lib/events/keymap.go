package events

import "github.com/fosdem/glwin/lib/input"

// Virtual-key codes that need more than a table lookup.
const (
	vkReturn  = 0x0D
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12

	// right shift reports this scan code, left shift 0x2A
	scanRightShift = 0x36

	extendedKeyBit = 1 << 24
)

// virtualKeys maps the virtual-key codes that mean one key regardless of the
// message's lParam.
var virtualKeys = map[uint32]input.Key{
	0x08: input.KeyBackspace,
	0x09: input.KeyTab,
	0x13: input.KeyPause,
	0x14: input.KeyCapsLock,
	0x1B: input.KeyEscape,
	0x20: input.KeySpace,
	0x21: input.KeyPageUp,
	0x22: input.KeyPageDown,
	0x23: input.KeyEnd,
	0x24: input.KeyHome,
	0x25: input.KeyLeft,
	0x26: input.KeyUp,
	0x27: input.KeyRight,
	0x28: input.KeyDown,
	0x2C: input.KeyPrintScreen,
	0x2D: input.KeyInsert,
	0x2E: input.KeyDelete,

	0x30: input.Key0, 0x31: input.Key1, 0x32: input.Key2, 0x33: input.Key3, 0x34: input.Key4,
	0x35: input.Key5, 0x36: input.Key6, 0x37: input.Key7, 0x38: input.Key8, 0x39: input.Key9,

	0x41: input.KeyA, 0x42: input.KeyB, 0x43: input.KeyC, 0x44: input.KeyD, 0x45: input.KeyE,
	0x46: input.KeyF, 0x47: input.KeyG, 0x48: input.KeyH, 0x49: input.KeyI, 0x4A: input.KeyJ,
	0x4B: input.KeyK, 0x4C: input.KeyL, 0x4D: input.KeyM, 0x4E: input.KeyN, 0x4F: input.KeyO,
	0x50: input.KeyP, 0x51: input.KeyQ, 0x52: input.KeyR, 0x53: input.KeyS, 0x54: input.KeyT,
	0x55: input.KeyU, 0x56: input.KeyV, 0x57: input.KeyW, 0x58: input.KeyX, 0x59: input.KeyY,
	0x5A: input.KeyZ,

	0x5B: input.KeyLeftSuper,
	0x5C: input.KeyRightSuper,
	0x5D: input.KeyMenu,

	0x60: input.KeyNumpad0, 0x61: input.KeyNumpad1, 0x62: input.KeyNumpad2, 0x63: input.KeyNumpad3,
	0x64: input.KeyNumpad4, 0x65: input.KeyNumpad5, 0x66: input.KeyNumpad6, 0x67: input.KeyNumpad7,
	0x68: input.KeyNumpad8, 0x69: input.KeyNumpad9,
	0x6A: input.KeyNumpadMultiply,
	0x6B: input.KeyNumpadAdd,
	0x6D: input.KeyNumpadSubtract,
	0x6E: input.KeyNumpadDecimal,
	0x6F: input.KeyNumpadDivide,

	0x70: input.KeyF1, 0x71: input.KeyF2, 0x72: input.KeyF3, 0x73: input.KeyF4,
	0x74: input.KeyF5, 0x75: input.KeyF6, 0x76: input.KeyF7, 0x77: input.KeyF8,
	0x78: input.KeyF9, 0x79: input.KeyF10, 0x7A: input.KeyF11, 0x7B: input.KeyF12,
	0x7C: input.KeyF13, 0x7D: input.KeyF14, 0x7E: input.KeyF15, 0x7F: input.KeyF16,
	0x80: input.KeyF17, 0x81: input.KeyF18, 0x82: input.KeyF19, 0x83: input.KeyF20,
	0x84: input.KeyF21, 0x85: input.KeyF22, 0x86: input.KeyF23, 0x87: input.KeyF24,

	0x90: input.KeyNumLock,
	0x91: input.KeyScrollLock,

	0xA0: input.KeyLeftShift,
	0xA1: input.KeyRightShift,
	0xA2: input.KeyLeftControl,
	0xA3: input.KeyRightControl,
	0xA4: input.KeyLeftAlt,
	0xA5: input.KeyRightAlt,

	0xAD: input.KeyVolumeMute,
	0xAE: input.KeyVolumeDown,
	0xAF: input.KeyVolumeUp,
	0xB0: input.KeyMediaNext,
	0xB1: input.KeyMediaPrevious,
	0xB2: input.KeyMediaStop,
	0xB3: input.KeyMediaPlayPause,

	0xBA: input.KeySemicolon,
	0xBB: input.KeyEqual,
	0xBC: input.KeyComma,
	0xBD: input.KeyMinus,
	0xBE: input.KeyPeriod,
	0xBF: input.KeySlash,
	0xC0: input.KeyGraveAccent,
	0xDB: input.KeyLeftBracket,
	0xDC: input.KeyBackslash,
	0xDD: input.KeyRightBracket,
	0xDE: input.KeyApostrophe,
}

// KeyFromVirtualKey maps a virtual-key code, with the lParam of its key
// message, to a key. Every code maps to something: codes with no named key
// give input.KeyUnknown.
func KeyFromVirtualKey(vk uint32, lParam uintptr) input.Key {
	extended := lParam&extendedKeyBit != 0

	switch vk {
	case vkReturn:
		if extended {
			return input.KeyNumpadEnter
		}
		return input.KeyEnter
	case vkShift:
		if (lParam>>16)&0xFF == scanRightShift {
			return input.KeyRightShift
		}
		return input.KeyLeftShift
	case vkControl:
		if extended {
			return input.KeyRightControl
		}
		return input.KeyLeftControl
	case vkMenu:
		if extended {
			return input.KeyRightAlt
		}
		return input.KeyLeftAlt
	}

	if k, ok := virtualKeys[vk]; ok {
		return k
	}
	return input.KeyUnknown
}
