package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/actioncore/common"
	"github.com/milk9111/actioncore/fsm"
)

const stickDeadzone = 0.2

// Raw is one poll of the devices before it is folded into a frame.
type Raw struct {
	Left, Right, Up, Down bool
	StickX, StickY        float64

	Jump, Attack, HeavyAttack, Spell, Slide bool
	Block                                   bool
}

// Keyboard samples ebiten keyboard, mouse and the first gamepad.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Sample() fsm.InputFrame {
	return Resolve(poll())
}

func poll() Raw {
	r := Raw{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),

		Jump:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Attack:      inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		HeavyAttack: inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Spell:       inpututil.IsKeyJustPressed(ebiten.KeyL),
		Slide:       inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		Block:       ebiten.IsKeyPressed(ebiten.KeyF),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		r.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		r.StickY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		r.Jump = r.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		r.Attack = r.Attack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		r.HeavyAttack = r.HeavyAttack || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		r.Spell = r.Spell || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		r.Slide = r.Slide || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		r.Block = r.Block || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}
	return r
}

// Resolve folds a poll into a frame. A stick past the deadzone overrides the
// digital direction on that axis.
func Resolve(r Raw) fsm.InputFrame {
	x := 0.0
	if r.Left {
		x -= 1
	}
	if r.Right {
		x += 1
	}
	y := 0.0
	if r.Up {
		y -= 1
	}
	if r.Down {
		y += 1
	}
	if math.Abs(r.StickX) > stickDeadzone {
		x = common.Clamp(r.StickX, -1, 1)
	}
	if math.Abs(r.StickY) > stickDeadzone {
		y = common.Clamp(r.StickY, -1, 1)
	}

	return fsm.InputFrame{
		Move:        common.V(x, y),
		Jump:        r.Jump,
		Attack:      r.Attack,
		HeavyAttack: r.HeavyAttack,
		Spell:       r.Spell,
		Slide:       r.Slide,
		Block:       r.Block,
	}
}
