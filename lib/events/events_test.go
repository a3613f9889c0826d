package events

import (
	"testing"

	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func makeLParam(lo, hi int) uintptr {
	return uintptr(uint16(int16(lo))) | uintptr(uint16(int16(hi)))<<16
}

func TestKeyFromVirtualKey(t *testing.T) {
	tests := []struct {
		name   string
		vk     uint32
		lParam uintptr
		want   input.Key
	}{
		{"letter", 0x41, 0, input.KeyA},
		{"last letter", 0x5A, 0, input.KeyZ},
		{"digit", 0x37, 0, input.Key7},
		{"function key", 0x87, 0, input.KeyF24},
		{"enter", 0x0D, 0, input.KeyEnter},
		{"numpad enter", 0x0D, extendedKeyBit, input.KeyNumpadEnter},
		{"left shift", 0x10, 0x2A << 16, input.KeyLeftShift},
		{"right shift", 0x10, scanRightShift << 16, input.KeyRightShift},
		{"left control", 0x11, 0, input.KeyLeftControl},
		{"right control", 0x11, extendedKeyBit, input.KeyRightControl},
		{"left alt", 0x12, 0, input.KeyLeftAlt},
		{"right alt", 0x12, extendedKeyBit, input.KeyRightAlt},
		{"explicit left shift", 0xA0, 0, input.KeyLeftShift},
		{"oem", 0xC0, 0, input.KeyGraveAccent},
		{"media", 0xB3, 0, input.KeyMediaPlayPause},
		{"unassigned", 0x07, 0, input.KeyUnknown},
		{"out of byte range", 0x1234, 0, input.KeyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromVirtualKey(tt.vk, tt.lParam); got != tt.want {
				t.Errorf("KeyFromVirtualKey(%#x, %#x) = %v, want %v", tt.vk, tt.lParam, got, tt.want)
			}
		})
	}
}

func TestKeyMapIsTotal(t *testing.T) {
	seen := make(map[input.Key]uint32)
	for vk := uint32(0); vk < 0x100; vk++ {
		k := KeyFromVirtualKey(vk, 0)
		if k == input.KeyUnknown {
			continue
		}
		if !k.Valid() {
			t.Fatalf("vk %#x mapped to out-of-range key %d", vk, int(k))
		}
		// VK_SHIFT/VK_CONTROL/VK_MENU alias the explicit left codes
		if prev, dup := seen[k]; dup && vk != 0x10 && vk != 0x11 && vk != 0x12 && prev != 0x10 && prev != 0x11 && prev != 0x12 {
			t.Errorf("vk %#x and %#x both map to %v", prev, vk, k)
		}
		seen[k] = vk
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want Event
	}{
		{"key down", Message{ID: WMKeyDown, WParam: 0x57}, Event{Kind: KeyDown, Key: input.KeyW}},
		{"sys key up", Message{ID: WMSysKeyUp, WParam: 0x73}, Event{Kind: KeyUp, Key: input.KeyF4}},
		{"middle down", Message{ID: WMMButtonDown}, Event{Kind: MouseDown, Button: input.MouseMiddle}},
		{"right up", Message{ID: WMRButtonUp}, Event{Kind: MouseUp, Button: input.MouseRight}},
		{"x button", Message{ID: WMXButtonDown}, Event{Kind: MouseDown, Button: input.MouseUnknown}},
		{"move", Message{ID: WMMouseMove, LParam: makeLParam(120, 45)}, Event{Kind: MouseMove, X: 120, Y: 45}},
		{"move outside client", Message{ID: WMMouseMove, LParam: makeLParam(-3, -7)}, Event{Kind: MouseMove, X: -3, Y: -7}},
		{"size", Message{ID: WMSize, LParam: makeLParam(1024, 768)}, Event{Kind: Resize, X: 1024, Y: 768}},
		{"quit", Message{ID: WMQuit, WParam: 3}, Event{Kind: Quit, ExitCode: 3}},
		{"paint", Message{ID: 0x000F}, Event{Kind: Ignored}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.msg); got != tt.want {
				t.Errorf("Translate(%+v) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	tr := NewTranslator(nil)
	snap := input.NewSnapshot(640, 480)

	tr.Dispatch(&snap, Message{ID: WMKeyDown, WParam: 0x20})
	tr.Dispatch(&snap, Message{ID: WMLButtonDown})
	tr.Dispatch(&snap, Message{ID: WMMouseMove, LParam: makeLParam(100, 100)})
	tr.Dispatch(&snap, Message{ID: WMMouseMove, LParam: makeLParam(80, 90)})
	tr.Dispatch(&snap, Message{ID: WMSize, LParam: makeLParam(800, 600)})

	if !snap.KeyPressed(input.KeySpace) {
		t.Error("space not pressed")
	}
	if !snap.MousePressed(input.MouseLeft) {
		t.Error("left button not pressed")
	}
	if snap.DeltaX != 20 || snap.DeltaY != 10 {
		t.Errorf("delta = (%d,%d), want (20,10)", snap.DeltaX, snap.DeltaY)
	}
	if !snap.Resized || snap.Width != 800 || snap.Height != 600 {
		t.Errorf("resize not applied: %+v", snap)
	}

	quit, code := tr.Dispatch(&snap, Message{ID: WMQuit, WParam: 7})
	if !quit || code != 7 {
		t.Errorf("quit = %v code %d, want true 7", quit, code)
	}
}

func TestDispatchDropsUnmappedInput(t *testing.T) {
	tr := NewTranslator(nil)
	var snap input.Snapshot
	before := testutil.ToFloat64(metrics.InputDropped)

	if quit, _ := tr.Dispatch(&snap, Message{ID: WMKeyDown, WParam: 0xFF}); quit {
		t.Fatal("unmapped key asked to quit")
	}
	tr.Dispatch(&snap, Message{ID: WMXButtonUp})

	if snap != (input.Snapshot{}) {
		t.Fatal("unmapped input mutated the snapshot")
	}
	if got := testutil.ToFloat64(metrics.InputDropped) - before; got != 2 {
		t.Fatalf("dropped counter moved by %v, want 2", got)
	}
}
