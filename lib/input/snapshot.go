package input

// Snapshot is the polled input and window state of one frame.
//
// A window session owns the only writable copy and mutates it while draining
// native messages; callers get a copy between pumps.
type Snapshot struct {
	keys  [KeyCount]ButtonState
	mouse [MouseButtonCount]ButtonState

	MouseX, MouseY int
	// DeltaX/DeltaY hold previous sample minus current sample, i.e. how far
	// the pointer moved back from its last position.
	DeltaX, DeltaY int
	// the first sample has nothing to be measured against
	hasSample bool

	// Resized is true only during the frame a resize was observed.
	Resized bool
	Width   int
	Height  int
}

func NewSnapshot(width, height int) Snapshot {
	return Snapshot{Width: width, Height: height}
}

// Decay ages transient states and clears the resize flag. It runs at the
// start of every pump.
func (s *Snapshot) Decay() {
	for i := range s.keys {
		s.keys[i] = s.keys[i].Decay()
	}
	for i := range s.mouse {
		s.mouse[i] = s.mouse[i].Decay()
	}
	s.Resized = false
}

func (s *Snapshot) PressKey(k Key) {
	if k.Valid() {
		s.keys[k] = s.keys[k].OnPress()
	}
}

func (s *Snapshot) ReleaseKey(k Key) {
	if k.Valid() {
		s.keys[k] = s.keys[k].OnRelease()
	}
}

func (s *Snapshot) PressMouse(b MouseButton) {
	if b.Valid() {
		s.mouse[b] = s.mouse[b].OnPress()
	}
}

func (s *Snapshot) ReleaseMouse(b MouseButton) {
	if b.Valid() {
		s.mouse[b] = s.mouse[b].OnRelease()
	}
}

// MoveMouse records a new pointer sample in client coordinates.
func (s *Snapshot) MoveMouse(x, y int) {
	if !s.hasSample {
		s.MouseX, s.MouseY = x, y
		s.hasSample = true
	}
	s.DeltaX = s.MouseX - x
	s.DeltaY = s.MouseY - y
	s.MouseX = x
	s.MouseY = y
}

func (s *Snapshot) Resize(width, height int) {
	s.Width = width
	s.Height = height
	s.Resized = true
}

// Key returns the state of k, Up for identifiers without a slot.
func (s *Snapshot) Key(k Key) ButtonState {
	if !k.Valid() {
		return Up
	}
	return s.keys[k]
}

func (s *Snapshot) Mouse(b MouseButton) ButtonState {
	if !b.Valid() {
		return Up
	}
	return s.mouse[b]
}

func (s *Snapshot) KeyPressed(k Key) bool  { return s.Key(k).IsPressedThisFrame() }
func (s *Snapshot) KeyDown(k Key) bool     { return s.Key(k).IsDown() }
func (s *Snapshot) KeyReleased(k Key) bool { return s.Key(k).IsReleasedThisFrame() }

func (s *Snapshot) MousePressed(b MouseButton) bool  { return s.Mouse(b).IsPressedThisFrame() }
func (s *Snapshot) MouseDown(b MouseButton) bool     { return s.Mouse(b).IsDown() }
func (s *Snapshot) MouseReleased(b MouseButton) bool { return s.Mouse(b).IsReleasedThisFrame() }
