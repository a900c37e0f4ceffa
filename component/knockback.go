package component

import "github.com/milk9111/actioncore/common"

// SelfKnockback pushes the defender horizontally away from the attacker.
// Coincident positions yield no push.
func SelfKnockback(attackerPos, defenderPos common.Vec2) common.Vec2 {
	return common.V(defenderPos.X-attackerPos.X, 0).Normalized()
}

// HitboxKnockback mirrors the hitbox's authored direction by the attacker's
// facing (+1 right, -1 left).
func HitboxKnockback(base common.Vec2, facing float64) common.Vec2 {
	if facing == 0 {
		facing = 1
	}
	return common.V(base.X*facing, base.Y).Normalized()
}

// Impulse scales a direction by a force.
func Impulse(dir common.Vec2, force float64) common.Vec2 {
	return dir.MulScalar(force)
}
