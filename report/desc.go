package report

import hog "github.com/ble-hog/hog"

// The report-map descriptors below follow USB HID report-descriptor
// syntax (usage page / usage / collection / report-size / report-count /
// input / output items) and must match the fixed report layouts the
// codecs in this package produce, byte for byte.

var joystickDesc = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x04, // USAGE (Joystick)
	0xa1, 0x01, // COLLECTION (Application)
	0x85, 0x01, //   REPORT_ID (1)
	0xa1, 0x00, //   COLLECTION (Physical)
	0x09, 0x30, //     USAGE (X)
	0x09, 0x31, //     USAGE (Y)
	0x15, 0x81, //     LOGICAL_MINIMUM (-127)
	0x25, 0x7f, //     LOGICAL_MAXIMUM (127)
	0x75, 0x08, //     REPORT_SIZE (8)
	0x95, 0x02, //     REPORT_COUNT (2)
	0x81, 0x02, //     INPUT (Data,Var,Abs)
	0x05, 0x09, //     USAGE_PAGE (Button)
	0x29, 0x08, //     USAGE_MAXIMUM (Button 8)
	0x19, 0x01, //     USAGE_MINIMUM (Button 1)
	0x95, 0x08, //     REPORT_COUNT (8)
	0x75, 0x01, //     REPORT_SIZE (1)
	0x25, 0x01, //     LOGICAL_MAXIMUM (1)
	0x15, 0x00, //     LOGICAL_MINIMUM (0)
	0x81, 0x02, //     INPUT (Data,Var,Abs)
	0xc0, //   END_COLLECTION
	0xc0, // END_COLLECTION
}

var mouseDesc = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x02, // USAGE (Mouse)
	0xa1, 0x01, // COLLECTION (Application)
	0x85, 0x01, //   REPORT_ID (1)
	0x09, 0x01, //   USAGE (Pointer)
	0xa1, 0x00, //   COLLECTION (Physical)
	0x05, 0x09, //     USAGE_PAGE (Button)
	0x19, 0x01, //     USAGE_MINIMUM (1)
	0x29, 0x03, //     USAGE_MAXIMUM (3)
	0x15, 0x00, //     LOGICAL_MINIMUM (0)
	0x25, 0x01, //     LOGICAL_MAXIMUM (1)
	0x95, 0x03, //     REPORT_COUNT (3)
	0x75, 0x01, //     REPORT_SIZE (1)
	0x81, 0x02, //     INPUT (Data,Var,Abs); 3 button bits
	0x95, 0x01, //     REPORT_COUNT (1)
	0x75, 0x05, //     REPORT_SIZE (5)
	0x81, 0x03, //     INPUT (Cnst); 5 bit padding
	0x05, 0x01, //     USAGE_PAGE (Generic Desktop)
	0x09, 0x30, //     USAGE (X)
	0x09, 0x31, //     USAGE (Y)
	0x09, 0x38, //     USAGE (Wheel)
	0x15, 0x81, //     LOGICAL_MINIMUM (-127)
	0x25, 0x7f, //     LOGICAL_MAXIMUM (127)
	0x75, 0x08, //     REPORT_SIZE (8)
	0x95, 0x03, //     REPORT_COUNT (3)
	0x81, 0x06, //     INPUT (Data,Var,Rel); X, Y, wheel
	0xc0, //   END_COLLECTION
	0xc0, // END_COLLECTION
}

var keyboardDesc = []byte{
	0x05, 0x01, // USAGE_PAGE (Generic Desktop)
	0x09, 0x06, // USAGE (Keyboard)
	0xa1, 0x01, // COLLECTION (Application)
	0x85, 0x01, //   REPORT_ID (1)
	0x75, 0x01, //   REPORT_SIZE (1)
	0x95, 0x08, //   REPORT_COUNT (8)
	0x05, 0x07, //   USAGE_PAGE (Key Codes)
	0x19, 0xe0, //   USAGE_MINIMUM (224)
	0x29, 0xe7, //   USAGE_MAXIMUM (231)
	0x15, 0x00, //   LOGICAL_MINIMUM (0)
	0x25, 0x01, //   LOGICAL_MAXIMUM (1)
	0x81, 0x02, //   INPUT (Data,Var,Abs); modifier byte
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x08, //   REPORT_SIZE (8)
	0x81, 0x01, //   INPUT (Cnst); reserved byte
	0x95, 0x05, //   REPORT_COUNT (5)
	0x75, 0x01, //   REPORT_SIZE (1)
	0x05, 0x08, //   USAGE_PAGE (LEDs)
	0x19, 0x01, //   USAGE_MINIMUM (1)
	0x29, 0x05, //   USAGE_MAXIMUM (5)
	0x91, 0x02, //   OUTPUT (Data,Var,Abs); LED report
	0x95, 0x01, //   REPORT_COUNT (1)
	0x75, 0x03, //   REPORT_SIZE (3)
	0x91, 0x01, //   OUTPUT (Cnst); LED padding
	0x95, 0x06, //   REPORT_COUNT (6)
	0x75, 0x08, //   REPORT_SIZE (8)
	0x15, 0x00, //   LOGICAL_MINIMUM (0)
	0x25, 0x65, //   LOGICAL_MAXIMUM (101)
	0x05, 0x07, //   USAGE_PAGE (Key Codes)
	0x19, 0x00, //   USAGE_MINIMUM (0)
	0x29, 0x65, //   USAGE_MAXIMUM (101)
	0x81, 0x00, //   INPUT (Data,Ary); 6 key codes
	0xc0, // END_COLLECTION
}

// Descriptor returns the report-map descriptor for the device kind.
func Descriptor(k hog.Kind) []byte {
	switch k {
	case hog.Mouse:
		return mouseDesc
	case hog.Keyboard:
		return keyboardDesc
	default:
		return joystickDesc
	}
}

// Initial returns the zeroed initial input report for the device kind.
func Initial(k hog.Kind) []byte {
	switch k {
	case hog.Mouse:
		return Mouse{}.Encode()
	case hog.Keyboard:
		return Keyboard{}.Encode()
	default:
		return Joystick{}.Encode()
	}
}
