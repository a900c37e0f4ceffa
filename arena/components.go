package arena

import (
	"github.com/milk9111/actioncore/character"
	"github.com/milk9111/actioncore/common"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	FighterTag = donburi.NewTag().SetName("Fighter")
	DummyTag   = donburi.NewTag().SetName("Dummy")
	LadderTag  = donburi.NewTag().SetName("Ladder")
)

// Resolv tags for hit detection.
const (
	ResolvHurtbox = "hurtbox"
	ResolvSwing   = "swing"
	ResolvLadder  = "ladder"
)

type FighterData struct {
	Character *character.Character
	Spawn     common.Vec2
	Swing     *resolv.Object
	deadFor   float64
}

type DummyData struct {
	Target *Target
}

type ObjectData struct {
	Object *resolv.Object
}

var (
	Fighter = donburi.NewComponentType[FighterData]()
	Dummy   = donburi.NewComponentType[DummyData]()
	Object  = donburi.NewComponentType[ObjectData]()
)
