// Package windowtest provides a scripted window.Platform for tests.
package windowtest

import (
	"errors"
	"fmt"

	"github.com/fosdem/glwin/lib/events"
	"github.com/fosdem/glwin/lib/window"
)

// Platform queues messages per window and hands them out on DrainEvents.
type Platform struct {
	ScreenWidth, ScreenHeight int

	FailCreate  bool
	FailDestroy bool

	ClassRegistered bool
	Registrations   int
	CursorVisible   bool
	Drains          int

	Windows map[window.Handle]*Window
	next    window.Handle
}

type Window struct {
	Title         string
	Width, Height int
	Style         window.Style
	Shown         bool
	Destroyed     bool

	queue []events.Message
}

func New(screenWidth, screenHeight int) *Platform {
	return &Platform{
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
		CursorVisible: true,
		Windows:       make(map[window.Handle]*Window),
		next:          0x1000,
	}
}

// Post queues messages for h, as the native queue would.
func (p *Platform) Post(h window.Handle, msgs ...events.Message) {
	w := p.Windows[h]
	w.queue = append(w.queue, msgs...)
}

// Queued is the number of messages still waiting for h.
func (p *Platform) Queued(h window.Handle) int {
	return len(p.Windows[h].queue)
}

func (p *Platform) RegisterClass() error {
	if p.ClassRegistered {
		return errors.New("class already registered")
	}
	p.ClassRegistered = true
	p.Registrations++
	return nil
}

func (p *Platform) UnregisterClass() error {
	if !p.ClassRegistered {
		return errors.New("class not registered")
	}
	p.ClassRegistered = false
	return nil
}

func (p *Platform) ScreenSize() (int, int) {
	return p.ScreenWidth, p.ScreenHeight
}

func (p *Platform) CreateWindow(title string, width, height int, style window.Style) (window.Handle, error) {
	if !p.ClassRegistered {
		return 0, errors.New("window class not registered")
	}
	if p.FailCreate {
		return 0, errors.New("simulated CreateWindow failure")
	}
	p.next++
	p.Windows[p.next] = &Window{Title: title, Width: width, Height: height, Style: style}
	return p.next, nil
}

func (p *Platform) ShowWindow(h window.Handle) {
	p.Windows[h].Shown = true
}

func (p *Platform) DestroyWindow(h window.Handle) error {
	w, ok := p.Windows[h]
	if !ok || w.Destroyed {
		return fmt.Errorf("no window %#x", h)
	}
	if p.FailDestroy {
		return errors.New("simulated DestroyWindow failure")
	}
	w.Destroyed = true
	return nil
}

func (p *Platform) DrainEvents(h window.Handle, dispatch window.DispatchFunc) {
	p.Drains++
	w := p.Windows[h]
	for len(w.queue) > 0 {
		m := w.queue[0]
		w.queue = w.queue[1:]
		if !dispatch(m) {
			return
		}
	}
}

func (p *Platform) ShowCursor(visible bool) {
	p.CursorVisible = visible
}
