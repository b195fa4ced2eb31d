package hog

// Kind selects which HID device the engine presents. The kind decides the
// report-map descriptor, the HID service layout, the report codec and the
// advertised appearance; everything else is shared.
type Kind int

const (
	Generic Kind = iota
	Joystick
	Mouse
	Keyboard
)

func (k Kind) String() string {
	switch k {
	case Joystick:
		return "joystick"
	case Mouse:
		return "mouse"
	case Keyboard:
		return "keyboard"
	default:
		return "generic hid"
	}
}

// Appearance returns the GAP appearance value advertised for the kind.
// See org.bluetooth.characteristic.gap.appearance.
func (k Kind) Appearance() uint16 {
	switch k {
	case Joystick:
		return 963
	case Mouse:
		return 962
	case Keyboard:
		return 961
	default:
		return 960
	}
}
