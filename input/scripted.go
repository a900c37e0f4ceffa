package input

import "github.com/milk9111/actioncore/fsm"

// Step holds a frame for a number of ticks. Action presses only fire on the
// first tick of the step; Move and Block are held throughout.
type Step struct {
	Frame fsm.InputFrame
	Ticks int
}

// Scripted replays a fixed sequence of steps, for headless runs and tests.
type Scripted struct {
	Steps []Step
	Loop  bool

	idx  int
	tick int
}

func NewScripted(loop bool, steps ...Step) *Scripted {
	return &Scripted{Steps: steps, Loop: loop}
}

func (s *Scripted) Sample() fsm.InputFrame {
	if s == nil {
		return fsm.InputFrame{}
	}
	for s.idx < len(s.Steps) && s.tick >= max(s.Steps[s.idx].Ticks, 1) {
		s.idx++
		s.tick = 0
	}
	if s.idx >= len(s.Steps) {
		if !s.Loop || len(s.Steps) == 0 {
			return fsm.InputFrame{}
		}
		s.Reset()
	}

	st := s.Steps[s.idx]
	f := st.Frame
	if s.tick > 0 {
		f = fsm.InputFrame{Move: f.Move, Block: f.Block}
	}
	s.tick++
	return f
}

// Done reports whether a non-looping script has been fully consumed.
func (s *Scripted) Done() bool {
	if s == nil || s.Loop {
		return false
	}
	for i := s.idx; i < len(s.Steps); i++ {
		if i > s.idx || s.tick < max(s.Steps[i].Ticks, 1) {
			return false
		}
	}
	return true
}

// Reset rewinds to the first step.
func (s *Scripted) Reset() {
	s.idx = 0
	s.tick = 0
}

// Demo is the headless routine: walk, jump, chain a full combo, slide,
// cast and finish with a heavy attack.
func Demo() *Scripted {
	right := fsm.InputFrame{}
	right.Move.X = 1
	return NewScripted(true,
		Step{Frame: right, Ticks: 30},
		Step{Frame: fsm.InputFrame{Jump: true}, Ticks: 45},
		Step{Frame: fsm.InputFrame{Attack: true}, Ticks: 7},
		Step{Frame: fsm.InputFrame{Attack: true}, Ticks: 7},
		Step{Frame: fsm.InputFrame{Attack: true}, Ticks: 40},
		Step{Frame: fsm.InputFrame{Slide: true, Move: right.Move}, Ticks: 40},
		Step{Frame: fsm.InputFrame{Spell: true}, Ticks: 60},
		Step{Frame: fsm.InputFrame{HeavyAttack: true}, Ticks: 60},
		Step{Frame: fsm.InputFrame{Block: true}, Ticks: 30},
	)
}
