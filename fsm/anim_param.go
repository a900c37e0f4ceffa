package fsm

import "fmt"

// AnimParam enumerates the animation parameters the machine writes.
type AnimParam int

const (
	ParamIsGround AnimParam = iota
	ParamXVelocity
	ParamYVelocity
	ParamIsSliding
	ParamIsClimbing
	ParamIsDead
	ParamBlock
	ParamCombo
	ParamJump
	ParamAttack
	ParamHeavyAttack
	ParamHurt
	ParamSpell
	ParamSlide
)

var paramNames = [...]string{
	ParamIsGround:    "IsGround",
	ParamXVelocity:   "xVelocity",
	ParamYVelocity:   "yVelocity",
	ParamIsSliding:   "IsSliding",
	ParamIsClimbing:  "IsClimbing",
	ParamIsDead:      "IsDead",
	ParamBlock:       "Block",
	ParamCombo:       "Combo",
	ParamJump:        "Jump",
	ParamAttack:      "Attack",
	ParamHeavyAttack: "HeavyAttack",
	ParamHurt:        "Hurt",
	ParamSpell:       "Spell",
	ParamSlide:       "Slide",
}

func (p AnimParam) String() string {
	if p < 0 || int(p) >= len(paramNames) {
		return fmt.Sprintf("param(%d)", int(p))
	}
	return paramNames[p]
}

// ParseAnimParam resolves a parameter by its name, case-sensitively.
func ParseAnimParam(name string) (AnimParam, bool) {
	for i, n := range paramNames {
		if n == name {
			return AnimParam(i), true
		}
	}
	return 0, false
}
