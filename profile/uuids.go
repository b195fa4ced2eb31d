package profile

import hog "github.com/ble-hog/hog"

// 16-bit SIG-assigned UUIDs of the three mandatory services and their
// characteristics.
var (
	DeviceInfoUUID = hog.UUID16(0x180a)
	BatteryUUID    = hog.UUID16(0x180f)
	HIDUUID        = hog.UUID16(0x1812)

	// Device Information Service characteristics.
	ModelNumberUUID      = hog.UUID16(0x2a24)
	SerialNumberUUID     = hog.UUID16(0x2a25)
	FirmwareRevisionUUID = hog.UUID16(0x2a26)
	HardwareRevisionUUID = hog.UUID16(0x2a27)
	SoftwareRevisionUUID = hog.UUID16(0x2a28)
	ManufacturerUUID     = hog.UUID16(0x2a29)
	PnPIDUUID            = hog.UUID16(0x2a50)

	// Battery Service characteristics.
	BatteryLevelUUID = hog.UUID16(0x2a19)

	// HID Service characteristics.
	HIDInformationUUID = hog.UUID16(0x2a4a)
	ReportMapUUID      = hog.UUID16(0x2a4b)
	ControlPointUUID   = hog.UUID16(0x2a4c)
	ReportUUID         = hog.UUID16(0x2a4d)
	ProtocolModeUUID   = hog.UUID16(0x2a4e)

	// Descriptors.
	CCCUUID                = hog.UUID16(0x2902) // client characteristic configuration
	PresentationFormatUUID = hog.UUID16(0x2904)
	ReportReferenceUUID    = hog.UUID16(0x2908)
)
