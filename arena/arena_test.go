package arena

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/fsm"
	"github.com/milk9111/actioncore/prefabs"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

type pad struct {
	frame fsm.InputFrame
}

func (p *pad) Sample() fsm.InputFrame {
	f := p.frame
	p.frame = fsm.InputFrame{Move: f.Move, Block: f.Block}
	return f
}

func yard(spawn common.Vec2, dummies ...prefabs.DummySpec) *prefabs.ArenaSpec {
	return &prefabs.ArenaSpec{
		Name:      "test_yard",
		Width:     20,
		Height:    12,
		Gravity:   40,
		Scale:     32,
		Spawn:     prefabs.VectorSpec{X: spawn.X, Y: spawn.Y},
		Platforms: []prefabs.RectSpec{{X: 0, Y: 10, Width: 20, Height: 2}},
		Ladders:   []prefabs.RectSpec{{X: 12, Y: 4, Width: 1, Height: 6}},
		Dummies:   dummies,
	}
}

func newArena(t *testing.T, spec *prefabs.ArenaSpec, respawn float64) (*Arena, *pad) {
	t.Helper()
	char, err := prefabs.LoadCharacterSpec()
	if err != nil {
		t.Fatalf("LoadCharacterSpec: %v", err)
	}
	in := &pad{}
	a, err := New(Options{
		Arena:        spec,
		Character:    char,
		Input:        in,
		Dummies:      -1,
		RespawnDelay: respawn,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	steps(a, 30)
	return a, in
}

func steps(a *Arena, n int) {
	for i := 0; i < n; i++ {
		a.Step(dt)
	}
}

func TestNewRequiresArena(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoArena) {
		t.Fatalf("err = %v, want ErrNoArena", err)
	}
}

func TestBundledArenaLoads(t *testing.T) {
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		t.Fatalf("LoadArenaSpec: %v", err)
	}
	a, _ := newArena(t, spec, 0)
	if got := len(a.Dummies()); got != len(spec.Dummies) {
		t.Fatalf("dummies = %d, want %d", got, len(spec.Dummies))
	}
	if a.Fighter() == nil || a.Fighter().Machine.Current() != component.ActionIdle {
		t.Fatalf("fighter not idle on the floor")
	}
	ladders := 0
	LadderTag.Each(a.World, func(*donburi.Entry) { ladders++ })
	if ladders != len(spec.Ladders) {
		t.Fatalf("ladders = %d", ladders)
	}
}

func TestSwingHitsDummyOnce(t *testing.T) {
	a, in := newArena(t, yard(common.V(5, 9.1), prefabs.DummySpec{Name: "d", Position: prefabs.VectorSpec{X: 6.4, Y: 9.2}, Health: 30}), 0)
	dummy := a.Dummies()[0]

	in.frame = fsm.InputFrame{Attack: true}
	steps(a, 10)
	if dummy.Hits != 1 || dummy.Health.Current != 20 {
		t.Fatalf("dummy hits=%d hp=%v", dummy.Hits, dummy.Health.Current)
	}
	if s := a.Stats(); s.Swings != 1 || s.Hits != 1 || s.Damage != 10 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestComboBreaksDummyAndItRespawns(t *testing.T) {
	a, in := newArena(t, yard(common.V(5, 9.1), prefabs.DummySpec{Name: "d", Position: prefabs.VectorSpec{X: 6.4, Y: 9.2}, Health: 30}), 0)
	dummy := a.Dummies()[0]

	for i := 0; i < 3; i++ {
		in.frame = fsm.InputFrame{Attack: true}
		steps(a, 10)
	}
	steps(a, 30)

	s := a.Stats()
	if s.Swings != 3 || s.Kills != 1 || !dummy.Health.Dead {
		t.Fatalf("stats=%+v dead=%v hp=%v", s, dummy.Health.Dead, dummy.Health.Current)
	}
	if dummy.LastHit.ComboStep != 3 {
		t.Fatalf("finishing step = %d, want 3", dummy.LastHit.ComboStep)
	}

	steps(a, int(DummyRespawn/dt)+5)
	if !dummy.Health.IsAlive() || dummy.Health.Current != dummy.Health.Max {
		t.Fatalf("dummy did not respawn: %+v", dummy.Health)
	}
}

func TestOutOfReachDummyUntouched(t *testing.T) {
	a, in := newArena(t, yard(common.V(5, 9.1), prefabs.DummySpec{Name: "far", Position: prefabs.VectorSpec{X: 9, Y: 9.2}, Health: 30}), 0)
	in.frame = fsm.InputFrame{Attack: true}
	steps(a, 30)
	if got := a.Dummies()[0].Hits; got != 0 {
		t.Fatalf("far dummy hit %d times", got)
	}
}

func TestLadderClimb(t *testing.T) {
	a, in := newArena(t, yard(common.V(12.5, 9.1)), 0)
	f := a.Fighter()
	startY := f.Position().Y

	in.frame = fsm.InputFrame{Move: common.V(0, -1)}
	steps(a, 20)
	if f.Machine.Current() != component.ActionClimb {
		t.Fatalf("state = %v, want climb", f.Machine.Current())
	}
	if f.Position().Y >= startY {
		t.Fatalf("did not climb: y %v -> %v", startY, f.Position().Y)
	}

	left := false
	for i := 0; i < 300 && !left; i++ {
		a.Step(dt)
		left = !f.Machine.IsInState(component.ActionClimb)
	}
	if !left {
		t.Fatalf("never left the ladder, y=%v", f.Position().Y)
	}
	if f.Body.GravityEnabled() == false {
		t.Fatalf("gravity not restored after climbing")
	}
}

func TestFighterRespawnsAfterDelay(t *testing.T) {
	a, _ := newArena(t, yard(common.V(5, 9.1)), 1)
	f := a.Fighter()
	f.TakeDamage(component.AttackDescriptor{Damage: 1000})
	steps(a, 1)
	if f.Machine.Current() != component.ActionDeath {
		t.Fatalf("state = %v, want death", f.Machine.Current())
	}
	steps(a, 70)
	if f.Machine.Current() == component.ActionDeath || !f.Health.IsAlive() {
		t.Fatalf("fighter did not respawn: %+v", f.Status())
	}
}

func TestDummyLimit(t *testing.T) {
	spec := yard(common.V(5, 9.1),
		prefabs.DummySpec{Name: "a", Position: prefabs.VectorSpec{X: 8, Y: 9.2}, Health: 10},
		prefabs.DummySpec{Name: "b", Position: prefabs.VectorSpec{X: 9, Y: 9.2}, Health: 10},
	)
	char, _ := prefabs.LoadCharacterSpec()
	a, err := New(Options{Arena: spec, Character: char, Dummies: 1, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if got := len(a.Dummies()); got != 1 {
		t.Fatalf("dummies = %d, want 1", got)
	}
}
