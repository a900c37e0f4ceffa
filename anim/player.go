package anim

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/actioncore/fsm"
)

var ErrUnknownClip = errors.New("anim: unknown clip")

// Clip is one authored animation. Playback length is Frames / FPS.
type Clip struct {
	Name   string
	Tag    string
	Frames int
	FPS    float64
	Loop   bool
}

// Duration returns the playback length in seconds.
func (c Clip) Duration() float64 {
	if c.Frames <= 0 || c.FPS <= 0 {
		return 0
	}
	return float64(c.Frames) / c.FPS
}

// Locomotion names the looping clips picked from parameters when no one-shot
// clip is playing.
type Locomotion struct {
	Idle  string
	Run   string
	Air   string
	Slide string
	Climb string
	Death string
}

// Player is a parameter-driven clip timeline. Triggers start one-shot clips;
// otherwise the clip follows the locomotion parameters.
type Player struct {
	clips      map[string]Clip
	triggers   map[fsm.AnimParam]string
	locomotion Locomotion

	bools  map[fsm.AnimParam]bool
	floats map[fsm.AnimParam]float64

	current   Clip
	elapsed   float64
	oneShot   bool
	completed bool

	OnComplete func(clip string)
}

// NewPlayer validates that every referenced clip exists and starts on the
// idle clip.
func NewPlayer(clips []Clip, triggers map[fsm.AnimParam]string, loco Locomotion) (*Player, error) {
	p := &Player{
		clips:      make(map[string]Clip, len(clips)),
		triggers:   make(map[fsm.AnimParam]string, len(triggers)),
		locomotion: loco,
		bools:      make(map[fsm.AnimParam]bool),
		floats:     make(map[fsm.AnimParam]float64),
	}
	for _, c := range clips {
		if c.Name == "" {
			return nil, fmt.Errorf("anim: clip without name")
		}
		if c.Duration() <= 0 {
			return nil, fmt.Errorf("anim: clip %q has no duration", c.Name)
		}
		p.clips[c.Name] = c
	}
	for param, name := range triggers {
		if _, ok := p.clips[name]; !ok {
			return nil, fmt.Errorf("%w: %q for trigger %v", ErrUnknownClip, name, param)
		}
		p.triggers[param] = name
	}
	for _, name := range []string{loco.Idle, loco.Run, loco.Air, loco.Slide, loco.Climb, loco.Death} {
		if name == "" {
			continue
		}
		if _, ok := p.clips[name]; !ok {
			return nil, fmt.Errorf("%w: locomotion %q", ErrUnknownClip, name)
		}
	}
	if _, ok := p.clips[loco.Idle]; !ok {
		return nil, fmt.Errorf("%w: idle clip %q", ErrUnknownClip, loco.Idle)
	}
	p.play(p.clips[loco.Idle], false)
	return p, nil
}

func (p *Player) SetBool(param fsm.AnimParam, v bool) {
	p.bools[param] = v
}

func (p *Player) SetFloat(param fsm.AnimParam, v float64) {
	p.floats[param] = v
}

// SetTrigger restarts the one-shot clip bound to param. Attack triggers
// prefer a "<clip>_<combo>" variant when one is authored.
func (p *Player) SetTrigger(param fsm.AnimParam) {
	name, ok := p.triggers[param]
	if !ok {
		return
	}
	if param == fsm.ParamAttack {
		step := int(p.floats[fsm.ParamCombo])
		if variant, ok := p.clips[fmt.Sprintf("%s_%d", name, step)]; ok {
			p.play(variant, true)
			return
		}
	}
	p.play(p.clips[name], true)
}

// NormalizedTime is the playback fraction of the current clip, wrapped for
// looping clips and clamped to 1 for finished one-shots.
func (p *Player) NormalizedTime() float64 {
	d := p.current.Duration()
	if d <= 0 {
		return 0
	}
	t := p.elapsed / d
	if p.current.Loop {
		return t - math.Floor(t)
	}
	return math.Min(t, 1)
}

func (p *Player) Tag() string {
	return p.current.Tag
}

// Clip returns the name of the clip on screen.
func (p *Player) Clip() string {
	return p.current.Name
}

// Frame returns the frame index to draw.
func (p *Player) Frame() int {
	f := int(p.NormalizedTime() * float64(p.current.Frames))
	if f >= p.current.Frames {
		f = p.current.Frames - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// Update advances playback by dt seconds.
func (p *Player) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	p.elapsed += dt

	if p.oneShot {
		if p.elapsed < p.current.Duration() {
			return
		}
		if !p.completed {
			p.completed = true
			if p.OnComplete != nil {
				p.OnComplete(p.current.Name)
			}
		}
		p.oneShot = false
	}

	next := p.pickLocomotion()
	if next != p.current.Name {
		p.play(p.clips[next], false)
	}
}

func (p *Player) pickLocomotion() string {
	l := p.locomotion
	pick := func(name string) string {
		if name == "" {
			return l.Idle
		}
		return name
	}
	switch {
	case p.bools[fsm.ParamIsDead]:
		return pick(l.Death)
	case p.bools[fsm.ParamIsClimbing]:
		return pick(l.Climb)
	case p.bools[fsm.ParamIsSliding]:
		return pick(l.Slide)
	case !p.bools[fsm.ParamIsGround]:
		return pick(l.Air)
	case p.floats[fsm.ParamXVelocity] > 0.1:
		return pick(l.Run)
	}
	return l.Idle
}

func (p *Player) play(c Clip, oneShot bool) {
	p.current = c
	p.elapsed = 0
	p.oneShot = oneShot
	p.completed = false
}
