package window

import (
	"fmt"

	"github.com/fosdem/glwin/lib/events"
	"github.com/fosdem/glwin/lib/glcontext"
	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/log"
	"github.com/fosdem/glwin/lib/metrics"
)

// Options configures Open. A zero Width or Height asks for a borderless
// window covering the screen.
type Options struct {
	Title      string
	Width      int
	Height     int
	HideCursor bool
	Version    glcontext.Version
}

// Session owns one native window, its graphics context and the input
// snapshot fed by that window's messages.
//
// A session is single threaded: Open, Pump and Shutdown must run on the
// thread that created it.
type Session struct {
	platform   Platform
	handle     Handle
	style      Style
	gfx        *glcontext.GraphicsContext
	translator *events.Translator
	log        *log.Logger

	snap input.Snapshot

	cursorHidden bool
	draining     bool
	quit         bool
	exitCode     int

	closed bool
	status int
}

// Open creates the window, negotiates its context and shows it. If anything
// fails the window is destroyed before it was ever shown.
func Open(p Platform, d glcontext.Driver, opts Options, l *log.Logger) (*Session, error) {
	if l == nil {
		l = log.Discard()
	}
	l = l.With("window")

	width, height := opts.Width, opts.Height
	style := Decorated
	if width == 0 || height == 0 {
		width, height = p.ScreenSize()
		style = Borderless
		l.Debug("no size requested, using full screen %dx%d", width, height)
	}

	if err := sessions.acquire(p); err != nil {
		l.Error("%s", err)
		return nil, err
	}

	h, err := p.CreateWindow(opts.Title, width, height, style)
	if err != nil {
		err = fmt.Errorf("could not create window: %w", err)
		l.Error("%s", err)
		if rerr := sessions.release(); rerr != nil {
			l.Warn("%s", rerr)
		}
		return nil, err
	}

	version := opts.Version
	if version.Major == 0 {
		version = glcontext.DefaultVersion
	}
	gfx, err := glcontext.NewNegotiator(d, version, l).Negotiate(uintptr(h))
	if err != nil {
		if derr := p.DestroyWindow(h); derr != nil {
			l.Warn("could not destroy window after failed negotiation: %s", derr)
		}
		if rerr := sessions.release(); rerr != nil {
			l.Warn("%s", rerr)
		}
		return nil, fmt.Errorf("could not create graphics context: %w", err)
	}

	s := &Session{
		platform:   p,
		handle:     h,
		style:      style,
		gfx:        gfx,
		translator: events.NewTranslator(l),
		log:        l,
		snap:       input.NewSnapshot(width, height),
	}
	sessions.add(h, s)

	p.ShowWindow(h)
	if opts.HideCursor {
		s.SetCursorVisible(false)
	}
	l.Info("opened %s window %q %dx%d", style, opts.Title, width, height)
	return s, nil
}

func (s *Session) Handle() Handle { return s.handle }
func (s *Session) Style() Style   { return s.style }

// Input returns a copy of the snapshot for the current frame.
func (s *Session) Input() input.Snapshot {
	return s.snap
}

// SetCursorVisible shows or hides the cursor. Shutdown restores it.
func (s *Session) SetCursorVisible(visible bool) {
	if s.closed || visible == !s.cursorHidden {
		return
	}
	s.platform.ShowCursor(visible)
	s.cursorHidden = !visible
}

// Pump ends the current frame: transient input states decay, the frame is
// presented and every queued message is applied. It returns false once a
// quit message has been seen.
func (s *Session) Pump() bool {
	if s.closed || s.quit {
		return false
	}
	metrics.FramesPumped.Inc()

	s.snap.Decay()
	if err := s.gfx.SwapBuffers(); err != nil {
		s.log.Warn("could not present frame: %s", err)
	}

	s.draining = true
	s.platform.DrainEvents(s.handle, s.Deliver)
	s.draining = false

	if s.quit {
		s.log.Info("quit requested with exit code %d", s.exitCode)
		return false
	}
	return true
}

// Draining reports whether Pump is currently draining messages, the only
// time Deliver accepts them.
func (s *Session) Draining() bool {
	return s.draining
}

// Deliver applies one message to the snapshot. Messages are only accepted
// while Pump is draining; it returns false once a quit has been seen.
func (s *Session) Deliver(m events.Message) bool {
	if !s.draining {
		s.log.Warn("message %#x delivered outside of pump, dropping", m.ID)
		return !s.quit
	}
	if s.quit {
		return false
	}
	if quit, code := s.translator.Dispatch(&s.snap, m); quit {
		s.quit = true
		s.exitCode = code
	}
	return !s.quit
}

// Shutdown tears the session down and returns the status the process
// should exit with: the quit exit code, or 1 if a teardown step failed.
// Calling it again returns the same status without doing anything.
func (s *Session) Shutdown() int {
	if s.closed {
		return s.status
	}
	s.closed = true
	s.status = s.exitCode

	if err := s.gfx.Destroy(); err != nil {
		s.log.Error("%s", err)
		s.status = 1
	}
	if err := s.platform.DestroyWindow(s.handle); err != nil {
		s.log.Error("could not destroy window: %s", err)
		s.status = 1
	}
	sessions.remove(s.handle)
	if err := sessions.release(); err != nil {
		s.log.Error("%s", err)
		s.status = 1
	}
	if s.cursorHidden {
		s.platform.ShowCursor(true)
		s.cursorHidden = false
	}

	s.log.Info("window closed, status %d", s.status)
	return s.status
}
