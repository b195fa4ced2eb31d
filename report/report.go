// Package report encodes and decodes the fixed-layout HID input and
// output reports exchanged with a central, one codec per device kind.
// The codecs are pure: identical state always packs to identical bytes.
package report

// Report is the input state of one HID device kind, packable into the
// byte layout its report-map descriptor declares.
type Report interface {
	Encode() []byte
}

// clamp saturates an axis or wheel value to the signed report range.
// Values outside [-127, 127] pin to the bound, never wrap.
func clamp(v int) int8 {
	if v > 127 {
		return 127
	}
	if v < -127 {
		return -127
	}
	return int8(v)
}

// Buttons is a button bitset; bit i set means button i+1 is pressed.
type Buttons byte

// Press returns the bitset with button n (1-based) pressed.
func (b Buttons) Press(n int) Buttons {
	if n < 1 || n > 8 {
		return b
	}
	return b | 1<<uint(n-1)
}

// Release returns the bitset with button n (1-based) released.
func (b Buttons) Release(n int) Buttons {
	if n < 1 || n > 8 {
		return b
	}
	return b &^ (1 << uint(n-1))
}

// Pressed reports whether button n (1-based) is pressed.
func (b Buttons) Pressed(n int) bool {
	if n < 1 || n > 8 {
		return false
	}
	return b&(1<<uint(n-1)) != 0
}
