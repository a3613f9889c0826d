package window_test

import (
	"errors"
	"testing"

	"github.com/fosdem/glwin/lib/events"
	"github.com/fosdem/glwin/lib/glcontext"
	"github.com/fosdem/glwin/lib/glcontext/glcontexttest"
	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/window"
	"github.com/fosdem/glwin/lib/window/windowtest"
)

func lParam(lo, hi int) uintptr {
	return uintptr(uint16(int16(lo))) | uintptr(uint16(int16(hi)))<<16
}

func open(t *testing.T, p *windowtest.Platform, d *glcontexttest.Driver, opts window.Options) *window.Session {
	t.Helper()
	s, err := window.Open(p, d, opts, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestOpenFullScreen(t *testing.T) {
	p := windowtest.New(2560, 1440)
	s := open(t, p, glcontexttest.New(), window.Options{Title: "full"})
	defer s.Shutdown()

	snap := s.Input()
	if snap.Width != 2560 || snap.Height != 1440 {
		t.Fatalf("size = %dx%d, want screen size", snap.Width, snap.Height)
	}
	w := p.Windows[s.Handle()]
	if w.Style != window.Borderless || s.Style() != window.Borderless {
		t.Fatalf("style = %v, want borderless", w.Style)
	}
	if w.Width != 2560 || w.Height != 1440 {
		t.Fatalf("window created %dx%d", w.Width, w.Height)
	}
}

func TestOpenZeroHeightIsFullScreen(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 800})
	defer s.Shutdown()

	if s.Style() != window.Borderless || s.Input().Width != 1920 {
		t.Fatalf("style %v width %d", s.Style(), s.Input().Width)
	}
}

func TestOpenDecorated(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Title: "demo", Width: 800, Height: 600})
	defer s.Shutdown()

	w := p.Windows[s.Handle()]
	if w.Style != window.Decorated || !w.Shown || w.Title != "demo" {
		t.Fatalf("window = %+v", w)
	}
	if got := s.Input(); got.Width != 800 || got.Height != 600 {
		t.Fatalf("size = %dx%d", got.Width, got.Height)
	}
}

func TestPumpInputLifecycle(t *testing.T) {
	p := windowtest.New(1920, 1080)
	d := glcontexttest.New()
	s := open(t, p, d, window.Options{Width: 640, Height: 480})
	defer s.Shutdown()

	if !s.Pump() {
		t.Fatal("Pump with an empty queue returned false")
	}
	if d.Swaps != 1 {
		t.Fatalf("swaps = %d, want 1", d.Swaps)
	}

	p.Post(s.Handle(), events.Message{ID: events.WMKeyDown, WParam: 0x41})
	s.Pump()
	snap := s.Input()
	if !snap.KeyPressed(input.KeyA) {
		t.Fatalf("A = %v, want pressed", snap.Key(input.KeyA))
	}

	// key repeat
	p.Post(s.Handle(), events.Message{ID: events.WMKeyDown, WParam: 0x41, LParam: 1 << 30})
	s.Pump()
	snap = s.Input()
	if snap.Key(input.KeyA) != input.Down {
		t.Fatalf("A = %v after repeat, want down", snap.Key(input.KeyA))
	}

	p.Post(s.Handle(), events.Message{ID: events.WMKeyUp, WParam: 0x41})
	s.Pump()
	snap = s.Input()
	if !snap.KeyReleased(input.KeyA) {
		t.Fatalf("A = %v, want released", snap.Key(input.KeyA))
	}

	s.Pump()
	snap = s.Input()
	if snap.Key(input.KeyA) != input.Up {
		t.Fatalf("A = %v, want up", snap.Key(input.KeyA))
	}
}

func TestPumpResizeFlag(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 640, Height: 480})
	defer s.Shutdown()

	p.Post(s.Handle(), events.Message{ID: events.WMSize, LParam: lParam(1024, 768)})
	s.Pump()
	snap := s.Input()
	if !snap.Resized || snap.Width != 1024 || snap.Height != 768 {
		t.Fatalf("after resize: resized=%v %dx%d", snap.Resized, snap.Width, snap.Height)
	}

	s.Pump()
	snap = s.Input()
	if snap.Resized {
		t.Fatal("resize flag still set in the following frame")
	}
	if snap.Width != 1024 {
		t.Fatal("size lost after the resize frame")
	}
}

func TestPumpMouse(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 640, Height: 480})
	defer s.Shutdown()

	p.Post(s.Handle(),
		events.Message{ID: events.WMMouseMove, LParam: lParam(100, 100)},
		events.Message{ID: events.WMMouseMove, LParam: lParam(80, 90)},
		events.Message{ID: events.WMRButtonDown},
	)
	s.Pump()
	snap := s.Input()
	if snap.MouseX != 80 || snap.MouseY != 90 || snap.DeltaX != 20 || snap.DeltaY != 10 {
		t.Fatalf("mouse = (%d,%d) delta (%d,%d)", snap.MouseX, snap.MouseY, snap.DeltaX, snap.DeltaY)
	}
	if !snap.MousePressed(input.MouseRight) {
		t.Fatal("right button not pressed")
	}
}

func TestPumpStopsAtQuit(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 640, Height: 480})

	p.Post(s.Handle(),
		events.Message{ID: events.WMKeyDown, WParam: 0x20},
		events.Message{ID: events.WMQuit, WParam: 3},
		events.Message{ID: events.WMKeyDown, WParam: 0x41},
	)
	if s.Pump() {
		t.Fatal("Pump returned true after quit")
	}
	if p.Queued(s.Handle()) != 1 {
		t.Fatalf("%d messages left, want the one after quit", p.Queued(s.Handle()))
	}
	snap := s.Input()
	if !snap.KeyPressed(input.KeySpace) || snap.KeyDown(input.KeyA) {
		t.Fatal("messages around quit applied incorrectly")
	}
	if s.Pump() {
		t.Fatal("Pump resumed after quit")
	}
	if code := s.Shutdown(); code != 3 {
		t.Fatalf("Shutdown = %d, want quit code 3", code)
	}
}

func TestDeliverOutsidePumpIsDropped(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 640, Height: 480})
	defer s.Shutdown()

	if s.Draining() {
		t.Fatal("Draining outside of Pump")
	}
	s.Deliver(events.Message{ID: events.WMKeyDown, WParam: 0x41})
	snap := s.Input()
	if snap.KeyDown(input.KeyA) {
		t.Fatal("message outside pump reached the snapshot")
	}
}

// routingPlatform delivers through the registry, the way a native window
// procedure reaches its session.
type routingPlatform struct {
	*windowtest.Platform
	sawDraining bool
}

func (p *routingPlatform) DrainEvents(h window.Handle, dispatch window.DispatchFunc) {
	s, ok := window.Lookup(h)
	if !ok {
		return
	}
	p.sawDraining = s.Draining()
	s.Deliver(events.Message{ID: events.WMKeyDown, WParam: 0x20})
}

func TestDeliverThroughLookup(t *testing.T) {
	p := &routingPlatform{Platform: windowtest.New(1920, 1080)}
	s, err := window.Open(p, glcontexttest.New(), window.Options{Width: 640, Height: 480}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Shutdown()

	s.Pump()
	snap := s.Input()
	if !p.sawDraining || !snap.KeyPressed(input.KeySpace) {
		t.Fatalf("draining %v, space %v", p.sawDraining, snap.Key(input.KeySpace))
	}
}

func TestNegotiationFailureLeavesNoWindow(t *testing.T) {
	p := windowtest.New(1920, 1080)
	d := glcontexttest.New()
	d.FailAt = glcontexttest.StepVersionedContext

	s, err := window.Open(p, d, window.Options{Width: 640, Height: 480}, nil)
	if err == nil {
		s.Shutdown()
		t.Fatal("Open succeeded")
	}
	if !errors.Is(err, glcontext.ErrVersionedContext) {
		t.Fatalf("error %v does not carry the failing step", err)
	}
	for h, w := range p.Windows {
		if w.Shown || !w.Destroyed {
			t.Fatalf("window %#x shown=%v destroyed=%v", h, w.Shown, w.Destroyed)
		}
	}
	if p.ClassRegistered {
		t.Fatal("window class still registered")
	}
	if err := d.Leaked(); err != nil {
		t.Fatal(err)
	}
	if window.LiveSessions() != 0 {
		t.Fatal("failed session left in registry")
	}
}

func TestCreateFailureReleasesClass(t *testing.T) {
	p := windowtest.New(1920, 1080)
	p.FailCreate = true
	if _, err := window.Open(p, glcontexttest.New(), window.Options{Width: 1, Height: 1}, nil); err == nil {
		t.Fatal("Open succeeded")
	}
	if p.ClassRegistered {
		t.Fatal("window class still registered")
	}
}

func TestClassRegistrationFollowsSessions(t *testing.T) {
	p := windowtest.New(1920, 1080)
	a := open(t, p, glcontexttest.New(), window.Options{Width: 320, Height: 200})
	b := open(t, p, glcontexttest.New(), window.Options{Width: 320, Height: 200})

	if p.Registrations != 1 {
		t.Fatalf("class registered %d times", p.Registrations)
	}
	if got, ok := window.Lookup(a.Handle()); !ok || got != a {
		t.Fatal("Lookup did not find the first session")
	}

	a.Shutdown()
	if !p.ClassRegistered {
		t.Fatal("class unregistered while a session is live")
	}
	if _, ok := window.Lookup(a.Handle()); ok {
		t.Fatal("shut down session still registered")
	}

	b.Shutdown()
	if p.ClassRegistered {
		t.Fatal("class still registered after the last session")
	}
}

func TestShutdown(t *testing.T) {
	p := windowtest.New(1920, 1080)
	d := glcontexttest.New()
	s := open(t, p, d, window.Options{Width: 640, Height: 480, HideCursor: true})

	if p.CursorVisible {
		t.Fatal("cursor not hidden")
	}
	if code := s.Shutdown(); code != 0 {
		t.Fatalf("Shutdown = %d", code)
	}
	if !p.CursorVisible {
		t.Fatal("cursor not restored")
	}
	if !p.Windows[s.Handle()].Destroyed {
		t.Fatal("window not destroyed")
	}
	if err := d.Leaked(); err != nil {
		t.Fatal(err)
	}

	calls := len(d.Calls)
	if code := s.Shutdown(); code != 0 {
		t.Fatalf("second Shutdown = %d", code)
	}
	if len(d.Calls) != calls {
		t.Fatal("second Shutdown touched the driver")
	}
	if s.Pump() {
		t.Fatal("Pump after Shutdown returned true")
	}
}

func TestShutdownReportsTeardownFailure(t *testing.T) {
	p := windowtest.New(1920, 1080)
	s := open(t, p, glcontexttest.New(), window.Options{Width: 640, Height: 480})
	p.FailDestroy = true

	if code := s.Shutdown(); code != 1 {
		t.Fatalf("Shutdown = %d, want 1", code)
	}
	if p.ClassRegistered {
		t.Fatal("class not released after a failed teardown")
	}
}
