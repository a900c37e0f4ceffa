package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/milk9111/actioncore/character"
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/event"
	"github.com/milk9111/actioncore/fsm"
	"github.com/milk9111/actioncore/physics"
	"github.com/milk9111/actioncore/prefabs"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var ErrNoArena = errors.New("arena: arena spec is required")

const (
	defaultScale = 32.0
	cellSize     = 16
	climbInput   = 0.5
)

type Options struct {
	Arena     *prefabs.ArenaSpec
	Character *prefabs.CharacterSpec
	Input     fsm.InputSampler
	// Dummies caps the number of training dummies; negative spawns all.
	Dummies int
	// RespawnDelay is how long the fighter stays dead. Zero disables
	// automatic respawn.
	RespawnDelay float64
	Logger       *slog.Logger
}

// Stats counts what the fighter's swings achieved.
type Stats struct {
	Swings int
	Hits   int
	Kills  int
	Damage float64
}

// Arena is a training yard: one fighter, a set of dummies and ladders. The
// entities live in a donburi world; hurtboxes, swings and ladders are resolv
// objects; bodies are simulated by the physics world.
type Arena struct {
	Spec    *prefabs.ArenaSpec
	World   donburi.World
	Physics *physics.World

	space        *resolv.Space
	scale        float64
	respawnDelay float64
	fighter      donburi.Entity
	stats        Stats
	logger       *slog.Logger
}

func New(opts Options) (*Arena, error) {
	if opts.Arena == nil {
		return nil, ErrNoArena
	}
	spec := opts.Arena
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = defaultScale
	}
	gravity := spec.Gravity
	if gravity == 0 {
		gravity = physics.DefaultGravity
	}

	a := &Arena{
		Spec:         spec,
		World:        donburi.NewWorld(),
		Physics:      physics.NewWorld(gravity),
		space:        resolv.NewSpace(int(math.Ceil(spec.Width*scale)), int(math.Ceil(spec.Height*scale)), cellSize, cellSize),
		scale:        scale,
		respawnDelay: opts.RespawnDelay,
		logger:       logger.With("arena", spec.Name),
	}

	a.Physics.AddBounds(spec.Width, spec.Height)
	for _, p := range spec.Platforms {
		a.Physics.AddPlatform(p.X, p.Y, p.Width, p.Height)
	}
	for _, l := range spec.Ladders {
		e := a.World.Create(LadderTag, Object)
		obj := a.newObject(l.X, l.Y, l.Width, l.Height, ResolvLadder)
		obj.Data = a.World.Entry(e)
		Object.SetValue(a.World.Entry(e), ObjectData{Object: obj})
	}

	if err := a.spawnFighter(opts); err != nil {
		return nil, err
	}

	limit := len(spec.Dummies)
	if opts.Dummies >= 0 && opts.Dummies < limit {
		limit = opts.Dummies
	}
	for _, d := range spec.Dummies[:limit] {
		a.AddDummy(NewTarget(d.Name, d.Position.Vec(), d.Health, d.Width, d.Height))
	}

	a.logger.Info("arena: ready", "dummies", limit, "ladders", len(spec.Ladders), "platforms", len(spec.Platforms))
	return a, nil
}

func (a *Arena) spawnFighter(opts Options) error {
	if opts.Character == nil {
		return character.ErrNoSpec
	}
	spawn := a.Spec.Spawn.Vec()
	c, err := character.New(character.Options{
		Spec:     opts.Character,
		World:    a.Physics,
		Position: spawn,
		Input:    opts.Input,
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}

	e := a.World.Create(FighterTag, Fighter, Object)
	entry := a.World.Entry(e)

	hurt := a.newObject(0, 0, opts.Character.Collider.Width, opts.Character.Collider.Height, ResolvHurtbox)
	hurt.Data = entry
	swing := resolv.NewObject(0, 0, 1, 1, ResolvSwing)
	swing.SetShape(resolv.NewRectangle(0, 0, 1, 1))

	Fighter.SetValue(entry, FighterData{Character: c, Spawn: spawn, Swing: swing})
	Object.SetValue(entry, ObjectData{Object: hurt})
	a.fighter = e
	a.syncHurtbox(hurt, c.Position(), opts.Character.Collider.Width, opts.Character.Collider.Height)

	c.Events.SwingStarted.Subscribe(func(event.Swing) { a.stats.Swings++ })
	c.Events.AttackHit.Subscribe(func(h event.Hit) {
		a.stats.Hits++
		a.stats.Damage += h.Damage
		if h.Killed {
			a.stats.Kills++
		}
	})
	return nil
}

// AddDummy places a training dummy in the arena.
func (a *Arena) AddDummy(t *Target) donburi.Entity {
	e := a.World.Create(DummyTag, Dummy, Object)
	entry := a.World.Entry(e)
	obj := a.newObject(t.Pos.X-t.Width/2, t.Pos.Y-t.Height/2, t.Width, t.Height, ResolvHurtbox)
	obj.Data = entry
	Dummy.SetValue(entry, DummyData{Target: t})
	Object.SetValue(entry, ObjectData{Object: obj})
	return e
}

func (a *Arena) newObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*a.scale, y*a.scale, w*a.scale, h*a.scale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*a.scale, h*a.scale))
	a.space.Add(obj)
	return obj
}

func (a *Arena) syncHurtbox(obj *resolv.Object, center common.Vec2, w, h float64) {
	obj.X = (center.X - w/2) * a.scale
	obj.Y = (center.Y - h/2) * a.scale
	obj.Update()
}

// Fighter returns the player-controlled character.
func (a *Arena) Fighter() *character.Character {
	entry := a.World.Entry(a.fighter)
	if entry == nil || !entry.Valid() {
		return nil
	}
	return Fighter.Get(entry).Character
}

// Dummies returns the training dummies in creation order.
func (a *Arena) Dummies() []*Target {
	var out []*Target
	DummyTag.Each(a.World, func(e *donburi.Entry) {
		out = append(out, Dummy.Get(e).Target)
	})
	return out
}

func (a *Arena) Stats() Stats {
	return a.stats
}

// Step advances the arena by dt: characters, physics, hurtboxes, ladders,
// swings and respawns, in that order.
func (a *Arena) Step(dt float64) {
	FighterTag.Each(a.World, func(e *donburi.Entry) {
		Fighter.Get(e).Character.Tick(dt)
	})

	a.Physics.Step(dt)

	FighterTag.Each(a.World, func(e *donburi.Entry) {
		f := Fighter.Get(e)
		obj := Object.Get(e).Object
		a.syncHurtbox(obj, f.Character.Position(), obj.W/a.scale, obj.H/a.scale)
		a.updateLadder(f.Character, obj)
		a.updateSwing(f)
		a.updateRespawn(f, dt)
	})

	DummyTag.Each(a.World, func(e *donburi.Entry) {
		Dummy.Get(e).Target.Tick(dt)
	})
}

func (a *Arena) updateLadder(c *character.Character, hurt *resolv.Object) {
	onLadder := false
	if check := hurt.Check(0, 0, ResolvLadder); check != nil {
		for _, obj := range check.Objects {
			if overlaps(hurt, obj) {
				onLadder = true
				break
			}
		}
	}

	climbing := c.Machine.IsInState(component.ActionClimb)
	switch {
	case climbing && !onLadder:
		c.Machine.StopClimbing()
	case !climbing && onLadder && math.Abs(c.Machine.Context().Input.Y) > climbInput:
		c.Machine.StartClimbing()
	}
}

func (a *Arena) updateSwing(f *FighterData) {
	hb := f.Character.Hitbox
	if !hb.Active() {
		if f.Swing.Space != nil {
			a.space.Remove(f.Swing)
		}
		return
	}

	x, y, w, h := f.Character.HitboxRect()
	f.Swing.X, f.Swing.Y = x*a.scale, y*a.scale
	f.Swing.W, f.Swing.H = w*a.scale, h*a.scale
	f.Swing.SetShape(resolv.NewRectangle(0, 0, f.Swing.W, f.Swing.H))
	if f.Swing.Space == nil {
		a.space.Add(f.Swing)
	} else {
		f.Swing.Update()
	}

	check := f.Swing.Check(0, 0, ResolvHurtbox)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		if !overlaps(f.Swing, obj) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if target := damageable(entry); target != nil {
			hb.Strike(target)
		}
	}
}

func (a *Arena) updateRespawn(f *FighterData, dt float64) {
	if a.respawnDelay <= 0 || !f.Character.Machine.IsInState(component.ActionDeath) {
		f.deadFor = 0
		return
	}
	f.deadFor += dt
	if f.deadFor >= a.respawnDelay {
		f.deadFor = 0
		f.Character.Respawn(f.Spawn)
	}
}

func damageable(entry *donburi.Entry) component.Damageable {
	switch {
	case entry.HasComponent(Dummy):
		return Dummy.Get(entry).Target
	case entry.HasComponent(Fighter):
		return Fighter.Get(entry).Character
	}
	return nil
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Close releases the fighter and clears the world.
func (a *Arena) Close() {
	FighterTag.Each(a.World, func(e *donburi.Entry) {
		Fighter.Get(e).Character.Close()
	})
}
