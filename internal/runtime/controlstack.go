package runtime

import "fmt"

// FrameKind tags a ControlStack frame's variant (spec.md §3 ControlStack:
// "a stack of control frames, each of which is either a GosubFrame or a
// ForFrame"). Modeled on internal/interp/runtime/callstack.go's CallStack
// in the teacher codebase, generalized to a tagged-union frame instead of
// a single frame shape, since RETURN and NEXT must be able to detect a
// mismatched frame on top (spec.md §9 "Control stack as tagged variants").
type FrameKind int

const (
	FrameGosub FrameKind = iota
	FrameFor
)

// Frame is one entry of the ControlStack.
type Frame struct {
	Kind FrameKind

	// GosubFrame fields
	ReturnPC PC

	// ForFrame fields
	Var     string
	Limit   Value
	Step    Value
	BodyPC  PC
}

// ControlStack is spec.md §3's ControlStack.
type ControlStack struct {
	frames []Frame
}

// NewControlStack creates an empty stack.
func NewControlStack() *ControlStack { return &ControlStack{} }

// PushGosub pushes a GosubFrame.
func (s *ControlStack) PushGosub(returnPC PC) {
	s.frames = append(s.frames, Frame{Kind: FrameGosub, ReturnPC: returnPC})
}

// PushFor pushes a ForFrame.
func (s *ControlStack) PushFor(v string, limit, step Value, bodyPC PC) {
	s.frames = append(s.frames, Frame{Kind: FrameFor, Var: v, Limit: limit, Step: step, BodyPC: bodyPC})
}

// PopGosub pops the top frame, which must be a GosubFrame, and returns its
// return PC. An empty stack or a mismatched top frame (spec.md §9: "this
// is a runtime error, not undefined behavior") is reported as an error.
func (s *ControlStack) PopGosub() (PC, error) {
	if len(s.frames) == 0 {
		return PC{}, fmt.Errorf("RETURN without GOSUB")
	}
	top := s.frames[len(s.frames)-1]
	if top.Kind != FrameGosub {
		return PC{}, fmt.Errorf("RETURN without GOSUB (found a FOR frame for %s on top of the stack)", top.Var)
	}
	s.frames = s.frames[:len(s.frames)-1]
	return top.ReturnPC, nil
}

// FindFor searches the stack from the top for a ForFrame matching name
// (case already folded by the caller), or, if name is "", the topmost
// ForFrame regardless of its variable (spec.md §4.6 NEXT [v]). It returns
// the frame's stack index, or -1 with an error if none is found — e.g. a
// NEXT whose variable was never the target of an active FOR (spec.md §9).
func (s *ControlStack) FindFor(name string) (int, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.Kind != FrameFor {
			continue
		}
		if name == "" || f.Var == name {
			return i, nil
		}
	}
	if name == "" {
		return -1, fmt.Errorf("NEXT without matching FOR")
	}
	return -1, fmt.Errorf("NEXT %s without matching FOR", name)
}

// Frame returns the frame at index i (0 = bottom of stack).
func (s *ControlStack) Frame(i int) Frame { return s.frames[i] }

// SetFrame overwrites the frame at index i. NEXT does not call it, since
// a ForFrame's loop variable itself lives in the SymbolTable — SetFrame
// exists for completeness/debugging.
func (s *ControlStack) SetFrame(i int, f Frame) { s.frames[i] = f }

// PopThrough removes every frame from index i (inclusive) to the top,
// used by NEXT to discard a completed ForFrame and any GosubFrames pushed
// inside the loop body that were never returned from — spec.md doesn't
// require this cleanup explicitly, but leaving dangling inner GosubFrames
// on the stack after a loop exits would corrupt later RETURNs, so NEXT
// discards everything above and including its own ForFrame once the loop
// is done.
func (s *ControlStack) PopThrough(i int) {
	s.frames = s.frames[:i]
}

// Depth returns the number of frames on the stack.
func (s *ControlStack) Depth() int { return len(s.frames) }

// Frames returns a copy of all frames, bottom to top, for debug
// inspection (spec.md §6 inspect_stack).
func (s *ControlStack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}
