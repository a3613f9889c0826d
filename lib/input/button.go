package input

// ButtonState is the per-frame state of a key or mouse button.
//
// Pressed and Released are transient: they survive exactly one Decay, which
// turns them into Down and Up.
type ButtonState uint8

const (
	Up ButtonState = iota
	Pressed
	Down
	Released
)

func (s ButtonState) String() string {
	switch s {
	case Up:
		return "up"
	case Pressed:
		return "pressed"
	case Down:
		return "down"
	case Released:
		return "released"
	}
	return "invalid"
}

// OnPress applies a press edge. Key repeat arrives as further presses while
// Down and must not re-enter Pressed. A Released button has to decay to Up
// before it can be pressed again.
func (s ButtonState) OnPress() ButtonState {
	switch s {
	case Up:
		return Pressed
	case Pressed, Down:
		return Down
	}
	return s
}

// OnRelease applies a release edge. Only a held button becomes Released; a
// Pressed one keeps its state until Decay has made it Down.
func (s ButtonState) OnRelease() ButtonState {
	switch s {
	case Down:
		return Released
	case Up, Released:
		return Up
	}
	return s
}

// Decay runs once per pump before new messages are drained.
func (s ButtonState) Decay() ButtonState {
	switch s {
	case Pressed:
		return Down
	case Released:
		return Up
	}
	return s
}

func (s ButtonState) IsPressedThisFrame() bool {
	return s == Pressed
}

func (s ButtonState) IsDown() bool {
	return s == Pressed || s == Down
}

func (s ButtonState) IsReleasedThisFrame() bool {
	return s == Released
}
