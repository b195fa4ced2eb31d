package report

import "github.com/pkg/errors"

// MouseLen is the encoded length of a mouse input report.
const MouseLen = 4

// Mouse is the input state of a mouse: up to three buttons in the low
// bits, two relative axes and a wheel.
type Mouse struct {
	Buttons Buttons
	X, Y    int
	Wheel   int
}

// mouseButtonMask keeps the three declared button bits; the remaining
// five bits of the byte are report padding.
const mouseButtonMask = 0x07

// Encode packs the state as [buttons, x, y, wheel], clamping the axes
// and the wheel.
func (m Mouse) Encode() []byte {
	return []byte{
		byte(m.Buttons) & mouseButtonMask,
		byte(clamp(m.X)),
		byte(clamp(m.Y)),
		byte(clamp(m.Wheel)),
	}
}

// DecodeMouse unpacks a mouse input report.
func DecodeMouse(b []byte) (Mouse, error) {
	if len(b) != MouseLen {
		return Mouse{}, errors.Errorf("mouse report: want %d bytes, have %d", MouseLen, len(b))
	}
	return Mouse{
		Buttons: Buttons(b[0] & mouseButtonMask),
		X:       int(int8(b[1])),
		Y:       int(int8(b[2])),
		Wheel:   int(int8(b[3])),
	}, nil
}
