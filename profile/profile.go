// Package profile assembles the GATT attribute table of a HID-over-GATT
// peripheral: the Device Information, Battery and HID services, with the
// device-kind-specific report map and characteristic layout injected. The
// handle bookkeeping after registration is positional; Bind pins every
// named characteristic to its transport-assigned handle.
package profile

import (
	hog "github.com/ble-hog/hog"
	"github.com/ble-hog/hog/report"
)

// Fixed widths of the Device Information string characteristics. Longer
// values are truncated, never rejected.
const (
	modelWidth        = 24
	serialWidth       = 16
	firmwareWidth     = 8
	hardwareWidth     = 16
	softwareWidth     = 8
	manufacturerWidth = 36
)

// PnPID identifies the vendor and product in the Device Information
// service. Source 0x01 means the vendor ID comes from the Bluetooth
// assigned-numbers list, 0x02 from the USB ID list.
type PnPID struct {
	Source  byte
	Vendor  uint16
	Product uint16
	Version uint16
}

// Info carries the Device Information service strings.
type Info struct {
	Manufacturer     string
	ModelNumber      string
	SerialNumber     string
	FirmwareRevision string
	HardwareRevision string
	SoftwareRevision string
	PnP              PnPID
}

// DefaultInfo is the device information advertised when the embedder
// supplies nothing.
func DefaultInfo() Info {
	return Info{
		Manufacturer:     "Homebrew",
		ModelNumber:      "1",
		SerialNumber:     "1",
		FirmwareRevision: "1",
		HardwareRevision: "1",
		SoftwareRevision: "1",
		PnP:              PnPID{Source: 0x01, Vendor: 0xfe61, Product: 0x01, Version: 0x0123},
	}
}

// Profile is the assembled service tree plus the inputs needed to
// compute its initial characteristic values. Immutable after New.
type Profile struct {
	Kind     hog.Kind
	Info     Info
	Services []hog.Service
}

// fixed characteristic permission sets, mirroring the profile tables
const (
	fRead         = hog.PropRead
	fReadWrite    = hog.PropRead | hog.PropWrite
	fReadNotify   = hog.PropRead | hog.PropNotify
	fReadWriteNR  = hog.PropRead | hog.PropWrite | hog.PropWriteNoResponse
	descReadWrite = hog.ReadWrite
	descRead      = hog.PropRead
)

// New assembles the service tree for a device kind. The three services
// appear in the fixed order DIS, BAS, HIDS; handle binding depends on it.
func New(kind hog.Kind, info Info) *Profile {
	dis := hog.Service{
		UUID: DeviceInfoUUID,
		Characteristics: []hog.Characteristic{
			{UUID: ModelNumberUUID, Properties: fRead},
			{UUID: SerialNumberUUID, Properties: fRead},
			{UUID: FirmwareRevisionUUID, Properties: fRead},
			{UUID: HardwareRevisionUUID, Properties: fRead},
			{UUID: SoftwareRevisionUUID, Properties: fRead},
			{UUID: ManufacturerUUID, Properties: fRead},
			{UUID: PnPIDUUID, Properties: fRead},
		},
	}

	bas := hog.Service{
		UUID: BatteryUUID,
		Characteristics: []hog.Characteristic{
			{
				UUID:       BatteryLevelUUID,
				Properties: fReadNotify,
				Descriptors: []hog.Descriptor{
					{UUID: CCCUUID, Permissions: descReadWrite},
					{UUID: PresentationFormatUUID, Permissions: descRead},
				},
			},
		},
	}

	hids := hog.Service{
		UUID: HIDUUID,
		Characteristics: []hog.Characteristic{
			{UUID: HIDInformationUUID, Properties: fRead},
			{UUID: ReportMapUUID, Properties: fRead},
			{UUID: ControlPointUUID, Properties: fReadWriteNR},
			{
				UUID:       ReportUUID,
				Properties: fReadNotify,
				Descriptors: []hog.Descriptor{
					{UUID: CCCUUID, Permissions: descReadWrite},
					{UUID: ReportReferenceUUID, Permissions: fReadWriteNR},
				},
			},
		},
	}
	if kind == hog.Keyboard {
		// The host writes LED state through a second, output report.
		hids.Characteristics = append(hids.Characteristics, hog.Characteristic{
			UUID:       ReportUUID,
			Properties: fReadWrite,
			Descriptors: []hog.Descriptor{
				{UUID: ReportReferenceUUID, Permissions: descRead},
			},
		})
	}
	hids.Characteristics = append(hids.Characteristics, hog.Characteristic{
		UUID: ProtocolModeUUID, Properties: fReadWriteNR,
	})

	return &Profile{
		Kind:     kind,
		Info:     info,
		Services: []hog.Service{dis, bas, hids},
	}
}

// AdvertisedServices returns the UUIDs to put in the advertising payload.
// Only the top-level HID service is advertised.
func (p *Profile) AdvertisedServices() []hog.UUID {
	return []hog.UUID{HIDUUID}
}

// ReportMap returns the report-map descriptor registered for the kind.
func (p *Profile) ReportMap() []byte {
	return report.Descriptor(p.Kind)
}
