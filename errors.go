package gui

import "errors"

// Errors reported by the draw list and the frame driver. The Context keeps
// the first error of a frame and EndFrame returns it.
var (
	ErrDrawListFull     = errors.New("gui: draw list capacity exceeded")
	ErrLayoutOverflow   = errors.New("gui: draw context stack overflow")
	ErrLayoutUnderflow  = errors.New("gui: draw context stack underflow")
	ErrUnbalancedPanel  = errors.New("gui: BeginPanel/EndPanel mismatch")
	ErrFrameNotStarted  = errors.New("gui: call outside BeginFrame/EndFrame")
	ErrNoFont           = errors.New("gui: no font set")
	ErrUnbalancedStyles = errors.New("gui: style override stack mismatch")
)
