package report

import "github.com/pkg/errors"

// JoystickLen is the encoded length of a joystick input report.
const JoystickLen = 3

// Joystick is the input state of a joystick: two signed axes and up to
// eight buttons.
type Joystick struct {
	X, Y    int
	Buttons Buttons
}

// Encode packs the state as [x, y, buttons], clamping the axes.
func (j Joystick) Encode() []byte {
	return []byte{byte(clamp(j.X)), byte(clamp(j.Y)), byte(j.Buttons)}
}

// DecodeJoystick unpacks a joystick input report.
func DecodeJoystick(b []byte) (Joystick, error) {
	if len(b) != JoystickLen {
		return Joystick{}, errors.Errorf("joystick report: want %d bytes, have %d", JoystickLen, len(b))
	}
	return Joystick{
		X:       int(int8(b[0])),
		Y:       int(int8(b[1])),
		Buttons: Buttons(b[2]),
	}, nil
}
