package profile

import (
	"github.com/pkg/errors"

	hog "github.com/ble-hog/hog"
)

// Bindings names the transport-assigned handle of every characteristic
// and descriptor in the tree. OutputReport and OutputReference are zero
// for kinds without an output report.
type Bindings struct {
	ModelNumber      uint16
	SerialNumber     uint16
	FirmwareRevision uint16
	HardwareRevision uint16
	SoftwareRevision uint16
	Manufacturer     uint16
	PnPID            uint16

	BatteryLevel  uint16
	BatteryCCC    uint16
	BatteryFormat uint16

	HIDInformation  uint16
	ReportMap       uint16
	ControlPoint    uint16
	InputReport     uint16
	InputCCC        uint16
	InputReference  uint16
	OutputReport    uint16
	OutputReference uint16
	ProtocolMode    uint16
}

// Bind maps the positional handle assignment of a registration back onto
// named handles. The correspondence is purely positional: the i-th handle
// of a service belongs to the i-th declared attribute, so the tree order
// in New and the unpacking order here must never drift apart.
func (p *Profile) Bind(hm hog.HandleMap) (*Bindings, error) {
	if err := hm.Validate(p.Services); err != nil {
		return nil, errors.Wrap(err, "bind handles")
	}

	b := &Bindings{}

	// DIS: seven characteristics, no descriptors.
	dis := hm[0]
	b.ModelNumber = dis[0]
	b.SerialNumber = dis[1]
	b.FirmwareRevision = dis[2]
	b.HardwareRevision = dis[3]
	b.SoftwareRevision = dis[4]
	b.Manufacturer = dis[5]
	b.PnPID = dis[6]

	// BAS: level characteristic followed by its two descriptors.
	bas := hm[1]
	b.BatteryLevel = bas[0]
	b.BatteryCCC = bas[1]
	b.BatteryFormat = bas[2]

	// HIDS: info, map, control point, input report (+CCC, +reference),
	// for keyboards an output report (+reference), then protocol mode.
	hid := hm[2]
	b.HIDInformation = hid[0]
	b.ReportMap = hid[1]
	b.ControlPoint = hid[2]
	b.InputReport = hid[3]
	b.InputCCC = hid[4]
	b.InputReference = hid[5]
	if p.Kind == hog.Keyboard {
		b.OutputReport = hid[6]
		b.OutputReference = hid[7]
		b.ProtocolMode = hid[8]
	} else {
		b.ProtocolMode = hid[6]
	}

	return b, nil
}
