package profile

import (
	"encoding/binary"

	hog "github.com/ble-hog/hog"
)

// Standard blobs written into the fixed-value characteristics.
var (
	// hidInformation is version 1.1, country 0, normally-connectable.
	hidInformation = []byte{0x01, 0x01, 0x00, 0x02}
	// batteryFormat is the presentation format of the level: uint8,
	// exponent 0, unit percentage (0x27ad), Bluetooth SIG namespace.
	batteryFormat = []byte{0x04, 0x00, 0xad, 0x27, 0x01, 0x00, 0x00}
	// cccDefault starts with notifications and indications off.
	cccDefault = []byte{0x00, 0x00}
	// input/output report references: report ID 1, type 1=input 2=output.
	inputReference  = []byte{0x01, 0x01}
	outputReference = []byte{0x01, 0x02}
	// protocolReport selects report protocol mode (not boot).
	protocolReport = []byte{0x01}
)

// stringPack packs a string into a fixed-width field, truncating an
// oversized value and zero-padding a short one.
func stringPack(s string, width int) []byte {
	b := make([]byte, width)
	copy(b, s)
	return b
}

// pnpPack packs the PnP ID characteristic: source byte then three
// little-endian 16-bit fields.
func pnpPack(p PnPID) []byte {
	b := make([]byte, 7)
	b[0] = p.Source
	binary.LittleEndian.PutUint16(b[1:], p.Vendor)
	binary.LittleEndian.PutUint16(b[3:], p.Product)
	binary.LittleEndian.PutUint16(b[5:], p.Version)
	return b
}

// InitialValues returns the value of every characteristic and descriptor
// in declared order, ready to be written through the transport right
// after registration. batteryLevel is a percentage; initialReport is the
// zeroed input report of the device kind.
func (p *Profile) InitialValues(b *Bindings, batteryLevel byte, initialReport []byte) []hog.HandleValue {
	vals := []hog.HandleValue{
		{Handle: b.ModelNumber, Value: stringPack(p.Info.ModelNumber, modelWidth)},
		{Handle: b.SerialNumber, Value: stringPack(p.Info.SerialNumber, serialWidth)},
		{Handle: b.FirmwareRevision, Value: stringPack(p.Info.FirmwareRevision, firmwareWidth)},
		{Handle: b.HardwareRevision, Value: stringPack(p.Info.HardwareRevision, hardwareWidth)},
		{Handle: b.SoftwareRevision, Value: stringPack(p.Info.SoftwareRevision, softwareWidth)},
		{Handle: b.Manufacturer, Value: stringPack(p.Info.Manufacturer, manufacturerWidth)},
		{Handle: b.PnPID, Value: pnpPack(p.Info.PnP)},

		{Handle: b.BatteryLevel, Value: []byte{batteryLevel}},
		{Handle: b.BatteryCCC, Value: cccDefault},
		{Handle: b.BatteryFormat, Value: batteryFormat},

		{Handle: b.HIDInformation, Value: hidInformation},
		{Handle: b.ReportMap, Value: p.ReportMap()},
		{Handle: b.InputReport, Value: initialReport},
		{Handle: b.InputCCC, Value: cccDefault},
		{Handle: b.InputReference, Value: inputReference},
	}
	if p.Kind == hog.Keyboard {
		vals = append(vals,
			hog.HandleValue{Handle: b.OutputReport, Value: []byte{0x00}},
			hog.HandleValue{Handle: b.OutputReference, Value: outputReference},
		)
	}
	return append(vals, hog.HandleValue{Handle: b.ProtocolMode, Value: protocolReport})
}
