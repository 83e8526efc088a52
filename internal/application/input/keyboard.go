package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/jumpfeel/internal/domain/motion"
)

// Keyboard polls ebiten keys and standard-layout gamepads.
// Keys give a digital axis; a gamepad stick overrides it when pushed further.
type Keyboard struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key

	gamepads []ebiten.GamepadID
}

// NewKeyboard creates a poller with A/D, arrows, W/Space/Up bindings
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
	}
}

// Poll reads the current device state
func (k *Keyboard) Poll() motion.InputSnapshot {
	axis := 0.0
	if anyPressed(k.Left) {
		axis--
	}
	if anyPressed(k.Right) {
		axis++
	}

	held := anyPressed(k.Jump)
	pressed := anyJustPressed(k.Jump)

	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		stick := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(stick) > math.Abs(axis) {
			axis = stick
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			held = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			pressed = true
		}
	}

	return motion.InputSnapshot{
		MoveAxis:    motion.ClampAxis(axis),
		JumpHeld:    held,
		JumpPressed: pressed,
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

