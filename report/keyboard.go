package report

import "github.com/pkg/errors"

// KeyboardLen is the encoded length of a keyboard input report.
const KeyboardLen = 8

// Modifier is the keyboard modifier bitset. Bit order follows the boot
// keyboard report: left-control in the least significant bit up to
// right-GUI in the most significant.
type Modifier byte

const (
	ModLeftControl Modifier = 1 << iota
	ModLeftShift
	ModLeftAlt
	ModLeftGUI
	ModRightControl
	ModRightShift
	ModRightAlt
	ModRightGUI
)

// Keyboard is the input state of a keyboard: the modifier bitset and up
// to six simultaneously held key codes. A zero key code means no key;
// releasing is expressed by re-encoding with all-zero key codes.
type Keyboard struct {
	Modifiers Modifier
	Keys      [6]byte
}

// Encode packs the state as [modifiers, reserved, k0..k5].
func (k Keyboard) Encode() []byte {
	b := make([]byte, KeyboardLen)
	b[0] = byte(k.Modifiers)
	copy(b[2:], k.Keys[:])
	return b
}

// Released returns the state with every key code cleared but the
// modifiers kept, the report a key release notifies.
func (k Keyboard) Released() Keyboard {
	return Keyboard{Modifiers: k.Modifiers}
}

// DecodeKeyboard unpacks a keyboard input report.
func DecodeKeyboard(b []byte) (Keyboard, error) {
	if len(b) != KeyboardLen {
		return Keyboard{}, errors.Errorf("keyboard report: want %d bytes, have %d", KeyboardLen, len(b))
	}
	k := Keyboard{Modifiers: Modifier(b[0])}
	copy(k.Keys[:], b[2:])
	return k, nil
}

// LEDs is the keyboard output report the host writes to light LEDs.
type LEDs byte

const (
	LEDNumLock LEDs = 1 << iota
	LEDCapsLock
	LEDScrollLock
	LEDCompose
	LEDKana
)

// DecodeLEDs unpacks the 1-byte LED output report.
func DecodeLEDs(b []byte) (LEDs, error) {
	if len(b) < 1 {
		return 0, errors.New("empty led report")
	}
	return LEDs(b[0]), nil
}
