package component

import "github.com/milk9111/actioncore/common"

// Faction identifies teams for friendly-fire checks.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
	FactionEnvironment
)

// Actor is anything that can be the source of an attack.
type Actor interface {
	ID() string
	Position() common.Vec2
	Faction() Faction
}

// Damageable receives attacks. Implementations decide whether the hit lands.
type Damageable interface {
	Actor
	TakeDamage(desc AttackDescriptor) Outcome
}

// AttackDescriptor is the immutable payload of a single hit.
type AttackDescriptor struct {
	Damage             float64
	Attacker           Actor
	KnockbackForce     float64
	KnockbackDirection common.Vec2
	ComboStep          int
	Heavy              bool
}

// Outcome is the result of handing an attack to a health model.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeHurt
	OutcomeKilled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHurt:
		return "hurt"
	case OutcomeKilled:
		return "killed"
	}
	return "ignored"
}

// Landed reports whether the hit changed health.
func (o Outcome) Landed() bool {
	return o == OutcomeHurt || o == OutcomeKilled
}

func factionCanHit(attacker Faction, target Faction) bool {
	if attacker == FactionNeutral || target == FactionNeutral {
		return true
	}
	return attacker != target
}
