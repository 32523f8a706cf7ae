package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	prevX, prevY float32 // Position at the last Reset

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released
	clickPos     [MouseButtonCount]Vec2 // Mouse position when the button went down
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state and remembers the current mouse
// position as the previous one.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	s.prevX, s.prevY = s.MouseX, s.MouseY
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state. A press records the current
// mouse position as the click origin, so set the position first.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		s.clickPos[button] = s.MousePos()
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// MousePos returns the current mouse position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{s.MouseX, s.MouseY}
}

// PrevMousePos returns the mouse position at the start of the frame.
func (s *InputState) PrevMousePos() Vec2 {
	return Vec2{s.prevX, s.prevY}
}

// MouseDelta returns how far the mouse moved this frame.
func (s *InputState) MouseDelta() Vec2 {
	return Vec2{s.MouseX - s.prevX, s.MouseY - s.prevY}
}

// ClickPos returns where the button was last pressed.
func (s *InputState) ClickPos(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	return s.clickPos[button]
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}
