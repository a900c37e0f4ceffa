package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actioncore/arena"
	"github.com/milk9111/actioncore/component"
	"github.com/milk9111/actioncore/config"
	"github.com/milk9111/actioncore/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var errQuit = errors.New("quit")

var (
	platformColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
	ladderColor   = color.NRGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	fighterColor  = color.NRGBA{R: 0x3c, G: 0x9d, B: 0xff, A: 0xff}
	hurtColor     = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
	dummyColor    = color.NRGBA{R: 0xd8, G: 0xc0, B: 0x7a, A: 0xff}
	brokenColor   = color.NRGBA{R: 0x44, G: 0x3c, B: 0x2a, A: 0xff}
	swingColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0x80}
)

type Game struct {
	frames int
	paused bool
	quit   bool

	arena   *arena.Arena
	cfg     config.Config
	logger  *slog.Logger
	pauseUI *ebitenui.UI
	reloads chan string
}

func NewGame(a *arena.Arena, cfg config.Config, logger *slog.Logger) *Game {
	g := &Game{
		arena:   a,
		cfg:     cfg,
		logger:  logger,
		reloads: make(chan string, 8),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// watch forwards prefab edits to the game loop, which applies them between
// ticks.
func (g *Game) watch(ctx context.Context, dir string) error {
	w, err := prefabs.NewWatcher(dir, dir+"/scripts")
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = w.Close()
	}()
	go w.Run(ctx, g.logger, func(path string) {
		if !prefabs.IsCharacterFile(path) {
			return
		}
		select {
		case g.reloads <- path:
		default:
		}
	})
	return nil
}

func (g *Game) reload() {
	spec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		g.logger.Error("game: reload failed", "err", err)
		return
	}
	if err := g.arena.Fighter().ApplySpec(spec); err != nil {
		g.logger.Error("game: apply failed", "err", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	pending := false
drain:
	for {
		select {
		case <-g.reloads:
			pending = true
		default:
			break drain
		}
	}
	if pending {
		g.reload()
	}

	g.frames++
	g.arena.Step(1 / float64(g.cfg.TPS))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	scale := float32(g.arena.Spec.Scale)
	if scale <= 0 {
		scale = 32
	}
	rect := func(x, y, w, h float64, c color.Color) {
		vector.FillRect(screen, float32(x)*scale, float32(y)*scale, float32(w)*scale, float32(h)*scale, c, false)
	}

	for _, p := range g.arena.Spec.Platforms {
		rect(p.X, p.Y, p.Width, p.Height, platformColor)
	}
	for _, l := range g.arena.Spec.Ladders {
		rect(l.X, l.Y, l.Width, l.Height, ladderColor)
	}
	for _, d := range g.arena.Dummies() {
		c := dummyColor
		if d.Health.Dead {
			c = brokenColor
		}
		rect(d.Pos.X-d.Width/2, d.Pos.Y-d.Height/2, d.Width, d.Height, c)
	}

	f := g.arena.Fighter()
	pos := f.Position()
	c := fighterColor
	if f.Machine.IsInState(component.ActionHurt) || f.Health.IsInvincible() && g.frames/4%2 == 0 {
		c = hurtColor
	}
	rect(pos.X-0.4, pos.Y-0.8, 0.8, 1.6, c)
	if f.Hitbox.Active() {
		x, y, w, h := f.HitboxRect()
		rect(x, y, w, h, swingColor)
	}

	s := g.arena.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f\n%s\nswings=%d hits=%d kills=%d dmg=%.0f",
		ebiten.ActualFPS(), f.Status(), s.Swings, s.Hits, s.Kills, s.Damage))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
