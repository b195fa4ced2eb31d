package report

import (
	"bytes"
	"testing"
)

func TestJoystickEncodeSaturates(t *testing.T) {
	over := Joystick{X: 200, Y: -200}.Encode()
	pinned := Joystick{X: 127, Y: -127}.Encode()
	if !bytes.Equal(over, pinned) {
		t.Fatalf("saturation: %v != %v", over, pinned)
	}
	if over[0] != 127 || int8(over[1]) != -127 {
		t.Fatalf("unexpected clamped bytes %v", over)
	}
}

func TestMouseEncodeSaturates(t *testing.T) {
	over := Mouse{X: 1000, Y: -1000, Wheel: 128}.Encode()
	pinned := Mouse{X: 127, Y: -127, Wheel: 127}.Encode()
	if !bytes.Equal(over, pinned) {
		t.Fatalf("saturation: %v != %v", over, pinned)
	}
}

func TestJoystickRoundTrip(t *testing.T) {
	in := Joystick{X: 100, Y: -100, Buttons: Buttons(0).Press(1).Press(3)}
	out, err := DecodeJoystick(in.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip: want %+v, got %+v", in, out)
	}
	if !out.Buttons.Pressed(1) || out.Buttons.Pressed(2) || !out.Buttons.Pressed(3) {
		t.Fatalf("button bits wrong: %08b", out.Buttons)
	}
}

func TestMouseButtonPadding(t *testing.T) {
	// Only the three declared button bits survive encoding.
	m := Mouse{Buttons: 0xff}
	b := m.Encode()
	if b[0] != 0x07 {
		t.Fatalf("button byte: want 0x07, got 0x%02x", b[0])
	}
}

func TestKeyboardRoundTrip(t *testing.T) {
	// Press 'a' with left shift held.
	in := Keyboard{Modifiers: ModLeftShift, Keys: [6]byte{0x04}}
	b := in.Encode()

	if b[0] != 0x02 {
		t.Fatalf("modifier byte: want 0x02, got 0x%02x", b[0])
	}
	if b[1] != 0x00 {
		t.Fatalf("reserved byte not zero: 0x%02x", b[1])
	}

	out, err := DecodeKeyboard(b)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip: want %+v, got %+v", in, out)
	}

	// Releasing clears the keys and keeps the modifiers.
	rel := in.Released().Encode()
	want := []byte{0x02, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(rel, want) {
		t.Fatalf("release: want %v, got %v", want, rel)
	}
}

func TestKeyboardEncodeIsPure(t *testing.T) {
	k := Keyboard{Modifiers: ModRightGUI, Keys: [6]byte{0x10, 0x11}}
	if !bytes.Equal(k.Encode(), k.Encode()) {
		t.Fatal("identical state encoded to different bytes")
	}
}

func TestModifierBitOrder(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want byte
	}{
		{ModLeftControl, 0x01},
		{ModLeftShift, 0x02},
		{ModLeftAlt, 0x04},
		{ModLeftGUI, 0x08},
		{ModRightControl, 0x10},
		{ModRightShift, 0x20},
		{ModRightAlt, 0x40},
		{ModRightGUI, 0x80},
	}
	for _, tt := range tests {
		if byte(tt.mod) != tt.want {
			t.Errorf("modifier %08b, want %08b", tt.mod, tt.want)
		}
	}
}

func TestDecodeLEDs(t *testing.T) {
	leds, err := DecodeLEDs([]byte{0x03})
	if err != nil {
		t.Fatal(err)
	}
	if leds&LEDNumLock == 0 || leds&LEDCapsLock == 0 || leds&LEDScrollLock != 0 {
		t.Fatalf("led bits wrong: %08b", leds)
	}

	if _, err := DecodeLEDs(nil); err == nil {
		t.Fatal("expected error for empty report")
	}
}

func TestDecodeLengthChecks(t *testing.T) {
	if _, err := DecodeJoystick([]byte{1, 2}); err == nil {
		t.Fatal("joystick: expected length error")
	}
	if _, err := DecodeMouse([]byte{1, 2, 3, 4, 5}); err == nil {
		t.Fatal("mouse: expected length error")
	}
	if _, err := DecodeKeyboard([]byte{1}); err == nil {
		t.Fatal("keyboard: expected length error")
	}
}
