package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// MouseTouchID is the touch ID given to the left mouse button.
	MouseTouchID = 1 << 16
	pinchTouchA  = MouseTouchID + 1
	pinchTouchB  = MouseTouchID + 2

	pinchStartSpread = 200.0
	pinchWheelStep   = 24.0
	pinchMinSpread   = 20.0
)

// EbitenSource reads ebiten touches. Without touches it falls back to the
// mouse: the left button is a single finger, and holding ctrl turns the
// cursor into a two-finger pinch whose spread follows the wheel.
type EbitenSource struct {
	buf    []ebiten.TouchID
	spread float64
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) Poll() []RawTouch {
	if s == nil {
		return nil
	}
	s.buf = ebiten.AppendTouchIDs(s.buf[:0])
	if len(s.buf) > 0 {
		out := make([]RawTouch, 0, len(s.buf))
		for _, id := range s.buf {
			x, y := ebiten.TouchPosition(id)
			out = append(out, RawTouch{ID: int(id), X: float64(x), Y: float64(y)})
		}
		return out
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if s.spread == 0 {
			s.spread = pinchStartSpread
		}
		_, wy := ebiten.Wheel()
		s.spread = math.Max(pinchMinSpread, s.spread+wy*pinchWheelStep)
		half := s.spread / 2
		return []RawTouch{
			{ID: pinchTouchA, X: x - half, Y: y},
			{ID: pinchTouchB, X: x + half, Y: y},
		}
	}
	s.spread = 0

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return []RawTouch{{ID: MouseTouchID, X: x, Y: y}}
	}
	return nil
}
