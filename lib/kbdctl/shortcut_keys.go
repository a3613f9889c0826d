package kbdctl

import (
	"fmt"
	"strings"

	"github.com/fosdem/glwin/lib/input"
	"github.com/fosdem/glwin/lib/log"
)

// Mod is a set of modifiers. Either the left or the right key satisfies a
// modifier.
type Mod uint8

const (
	ModControl Mod = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

var modKeys = []struct {
	mod         Mod
	name        string
	left, right input.Key
}{
	{ModControl, "ctrl", input.KeyLeftControl, input.KeyRightControl},
	{ModShift, "shift", input.KeyLeftShift, input.KeyRightShift},
	{ModAlt, "alt", input.KeyLeftAlt, input.KeyRightAlt},
	{ModSuper, "super", input.KeyLeftSuper, input.KeyRightSuper},
}

// Held reports whether every modifier in m is down in snap.
func (m Mod) Held(snap *input.Snapshot) bool {
	for _, mk := range modKeys {
		if m&mk.mod != 0 && !snap.KeyDown(mk.left) && !snap.KeyDown(mk.right) {
			return false
		}
	}
	return true
}

// Shortcut is a key pressed while some modifiers are held.
type Shortcut struct {
	Key  input.Key
	Mods Mod
}

// Triggered reports whether s was hit in the frame snap describes. It
// fires once per press, not while the key stays down.
func (s Shortcut) Triggered(snap *input.Snapshot) bool {
	return snap.KeyPressed(s.Key) && s.Mods.Held(snap)
}

func (s Shortcut) String() string {
	var parts []string
	for _, mk := range modKeys {
		if s.Mods&mk.mod != 0 {
			parts = append(parts, mk.name)
		}
	}
	return strings.Join(append(parts, s.Key.String()), "+")
}

// Parse reads a shortcut like "ctrl+shift+q".
func Parse(text string) (Shortcut, error) {
	var s Shortcut
	parts := strings.Split(text, "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i < len(parts)-1 {
			found := false
			for _, mk := range modKeys {
				if strings.EqualFold(part, mk.name) {
					s.Mods |= mk.mod
					found = true
				}
			}
			if !found {
				return Shortcut{}, fmt.Errorf("unknown modifier %q in shortcut %q", part, text)
			}
			continue
		}
		k, ok := input.KeyByName(part)
		if !ok {
			return Shortcut{}, fmt.Errorf("unknown key %q in shortcut %q", part, text)
		}
		s.Key = k
	}
	return s, nil
}

type binding struct {
	shortcut Shortcut
	name     string
	action   func()
}

// Shortcuts runs actions bound to shortcuts, checked once per frame.
type Shortcuts struct {
	log      *log.Logger
	bindings []binding
}

func New(l *log.Logger) *Shortcuts {
	if l == nil {
		l = log.Discard()
	}
	return &Shortcuts{log: l.With("kbdctl")}
}

func (s *Shortcuts) Bind(shortcut Shortcut, name string, action func()) {
	s.bindings = append(s.bindings, binding{shortcut, name, action})
}

// Poll runs every action whose shortcut fired in snap and returns how many
// did.
func (s *Shortcuts) Poll(snap *input.Snapshot) int {
	n := 0
	for _, b := range s.bindings {
		if b.shortcut.Triggered(snap) {
			s.log.Info("%s: %s", b.shortcut, b.name)
			b.action()
			n++
		}
	}
	return n
}
