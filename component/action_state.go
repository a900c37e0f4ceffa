package component

import (
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("component: unknown action kind")

// ActionKind identifies one behavior of the action state machine. The set is
// closed; ActionNone is only used as the "from" side of the initial change.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionIdle
	ActionMove
	ActionJump
	ActionAttack
	ActionHurt
	ActionDeath
	ActionSlide
	ActionClimb
	ActionCast
)

var actionNames = [...]string{
	ActionNone:   "none",
	ActionIdle:   "idle",
	ActionMove:   "move",
	ActionJump:   "jump",
	ActionAttack: "attack",
	ActionHurt:   "hurt",
	ActionDeath:  "death",
	ActionSlide:  "slide",
	ActionClimb:  "climb",
	ActionCast:   "cast",
}

// ActionKinds lists every selectable kind in declaration order.
func ActionKinds() []ActionKind {
	return []ActionKind{ActionIdle, ActionMove, ActionJump, ActionAttack, ActionHurt, ActionDeath, ActionSlide, ActionClimb, ActionCast}
}

func (k ActionKind) Valid() bool {
	return k > ActionNone && k <= ActionCast
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return actionNames[k]
}

