//go:build windows

package win32

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/fosdem/glwin/lib/events"
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/window"
	"golang.org/x/sys/windows"
)

var (
	// NewCallback slots are never freed, so the window procedure is
	// created once per process.
	wndProcOnce sync.Once
	wndProcPtr  uintptr
)

// Platform is the user32 implementation of window.Platform.
type Platform struct {
	log       *log.Logger
	className *uint16
	instance  windows.Handle
}

func NewPlatform(l *log.Logger) (*Platform, error) {
	if l == nil {
		l = log.Discard()
	}
	if size := unsafe.Sizeof(pixelFormatDescriptor{}); size != 40 {
		return nil, fmt.Errorf("PIXELFORMATDESCRIPTOR is %d bytes, want 40", size)
	}

	// unique per process so a stale CS_OWNDC class is never reused
	className, err := windows.UTF16PtrFromString(fmt.Sprintf("glwin_%d", os.Getpid()))
	if err != nil {
		return nil, err
	}
	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return nil, fmt.Errorf("could not get module handle: %w", err)
	}

	wndProcOnce.Do(func() {
		wndProcPtr = windows.NewCallback(wndProc)
	})
	return &Platform{
		log:       l.With("win32"),
		className: className,
		instance:  instance,
	}, nil
}

func (p *Platform) RegisterClass() error {
	cursor, _, _ := procLoadCursor.Call(0, idcArrow)
	wc := wndClassEx{
		cbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		style:         csOwnDC | csHRedraw | csVRedraw,
		lpfnWndProc:   wndProcPtr,
		hInstance:     p.instance,
		hCursor:       windows.Handle(cursor),
		lpszClassName: p.className,
	}
	if r, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		return callErr("RegisterClassExW", err)
	}
	p.log.Debug("registered window class")
	return nil
}

func (p *Platform) UnregisterClass() error {
	r, _, err := procUnregisterClass.Call(uintptr(unsafe.Pointer(p.className)), uintptr(p.instance))
	if r == 0 {
		return callErr("UnregisterClassW", err)
	}
	p.log.Debug("unregistered window class")
	return nil
}

func (p *Platform) ScreenSize() (int, int) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return int(int32(w)), int(int32(h))
}

func (p *Platform) CreateWindow(title string, width, height int, style window.Style) (window.Handle, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}

	var (
		exStyle uint32
		wsStyle uint32 = wsClipSiblings | wsClipChildren
		x, y    uintptr
	)
	switch style {
	case window.Borderless:
		exStyle = wsExTopmost | wsExAppWindow
		wsStyle |= wsPopup
	default:
		wsStyle |= wsOverlappedWindow
		x, y = cwUseDefault, cwUseDefault

		// grow the outer frame so the client area gets the requested size
		r := rect{right: int32(width), bottom: int32(height)}
		if ok, _, _ := procAdjustWindowRect.Call(
			uintptr(unsafe.Pointer(&r)), uintptr(wsStyle), 0, uintptr(exStyle),
		); ok != 0 {
			width, height = int(r.right-r.left), int(r.bottom-r.top)
		}
	}

	hwnd, _, callerr := procCreateWindowEx.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(p.className)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(wsStyle),
		x, y,
		uintptr(width), uintptr(height),
		0, 0,
		uintptr(p.instance),
		0,
	)
	if hwnd == 0 {
		return 0, callErr("CreateWindowExW", callerr)
	}
	p.log.Trace("created %s window %#x", style, hwnd)
	return window.Handle(hwnd), nil
}

func (p *Platform) ShowWindow(h window.Handle) {
	procShowWindow.Call(uintptr(h), swShow)
	procUpdateWindow.Call(uintptr(h))
}

func (p *Platform) DestroyWindow(h window.Handle) error {
	if r, _, err := procDestroyWindow.Call(uintptr(h)); r == 0 {
		return callErr("DestroyWindow", err)
	}
	return nil
}

// DrainEvents removes every queued message without waiting. Window
// messages reach their session through the window procedure; the thread
// quit message has no window, so it is handed to dispatch here and ends the
// drain.
func (p *Platform) DrainEvents(h window.Handle, dispatch window.DispatchFunc) {
	var m msg
	for {
		if r, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove); r == 0 {
			return
		}
		if m.message == wmQuit {
			dispatch(events.Message{ID: m.message, WParam: m.wParam, LParam: m.lParam})
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (p *Platform) ShowCursor(visible bool) {
	var show uintptr
	if visible {
		show = 1
	}
	procShowCursor.Call(show)
}

// wndProc forwards messages to the session owning hwnd while that session
// is pumping. Anything sent outside a pump, e.g. while the window is being
// created or shown, only gets default handling.
func wndProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	if s, ok := window.Lookup(window.Handle(hwnd)); ok && s.Draining() {
		s.Deliver(events.Message{ID: message, WParam: wParam, LParam: lParam})
	}

	switch message {
	case wmClose:
		// the session owns destruction; turn the close into a quit
		procPostQuitMessage.Call(0)
		return 0
	}
	r, _, _ := procDefWindowProc.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return r
}
