package window

import (
	"fmt"
	"sync"
)

// registry is the process-wide state shared by sessions: the window class
// registration and the table from native handle to owning session.
type registry struct {
	mu       sync.Mutex
	platform Platform
	users    int
	sessions map[Handle]*Session
}

var sessions = &registry{sessions: make(map[Handle]*Session)}

// acquire registers the window class for the first user.
func (r *registry) acquire(p Platform) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == 0 {
		if err := p.RegisterClass(); err != nil {
			return fmt.Errorf("could not register window class: %w", err)
		}
		r.platform = p
	} else if r.platform != p {
		return fmt.Errorf("window class already registered by another platform")
	}
	r.users++
	return nil
}

// release unregisters the window class once its last user is gone.
func (r *registry) release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.users == 0 {
		return nil
	}
	r.users--
	if r.users > 0 {
		return nil
	}
	p := r.platform
	r.platform = nil
	if err := p.UnregisterClass(); err != nil {
		return fmt.Errorf("could not unregister window class: %w", err)
	}
	return nil
}

func (r *registry) add(h Handle, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[h] = s
}

func (r *registry) remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, h)
}

// Lookup returns the live session owning h.
func Lookup(h Handle) (*Session, bool) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	s, ok := sessions.sessions[h]
	return s, ok
}

// LiveSessions is the number of sessions that have not shut down.
func LiveSessions() int {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	return len(sessions.sessions)
}
