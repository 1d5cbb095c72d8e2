package animation

import "math"

const (
	// StartX is the initial horizontal offset, placing the triangle near the left edge.
	StartX float32 = -1.0

	// BaseY is the resting vertical offset, placing the triangle near the bottom edge.
	BaseY float32 = -0.75

	// MoveStep is the horizontal distance covered per frame while Left or Right is held.
	MoveStep float32 = 0.01

	// JumpDuration is the length of a jump in seconds.
	JumpDuration = 1.0

	// JumpPeak is the height reached halfway through a jump.
	JumpPeak = 0.5
)

// Input is a snapshot of the keys polled for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// State is the mutable per-frame animation state of the triangle.
// OffsetX is unbounded; JumpHeight is only non-zero while Jumping is true.
type State struct {
	OffsetX       float32
	BaseY         float32
	JumpHeight    float32
	JumpStart     float64
	Jumping       bool
	RotationAngle float32
}

// NewState returns the state the demo starts in: resting at the bottom left, not jumping.
//
// Returns:
//   - State: the initial state
func NewState() State {
	return State{
		OffsetX: StartX,
		BaseY:   BaseY,
	}
}

// Y returns the vertical translation for the current frame.
//
// Returns:
//   - float32: BaseY plus the current jump height
func (s *State) Y() float32 {
	return s.BaseY + s.JumpHeight
}

// Update advances s by one frame.
// Steps are per frame and are not scaled by the frame time, so the speed follows the frame rate.
//
// Parameters:
//   - s: the state to mutate
//   - in: the keys held this frame
//   - now: the current time in seconds
func Update(s *State, in Input, now float64) {
	if in.Left {
		s.OffsetX -= MoveStep
	}
	if in.Right {
		s.OffsetX += MoveStep
	}

	if in.Jump && !s.Jumping {
		s.Jumping = true
		s.JumpStart = now
	}

	if s.Jumping {
		progress := (now - s.JumpStart) / JumpDuration
		if progress < 1 {
			s.JumpHeight = JumpHeight(progress)
		} else {
			s.JumpHeight = 0
			s.Jumping = false
		}
	}
}

// JumpHeight evaluates the half-sine jump arc at the given fraction of the jump.
// Returns 0 outside [0, 1).
//
// Parameters:
//   - progress: elapsed fraction of the jump
//
// Returns:
//   - float32: height above BaseY
func JumpHeight(progress float64) float32 {
	if progress < 0 || progress >= 1 {
		return 0
	}
	return float32(math.Sin(progress*math.Pi) * JumpPeak)
}
