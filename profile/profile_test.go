package profile

import (
	"bytes"
	"testing"

	hog "github.com/ble-hog/hog"
	"github.com/ble-hog/hog/report"
)

// fakeHandles assigns sequential handles the way a stack would: one per
// characteristic and descriptor, in declared order.
func fakeHandles(services []hog.Service) hog.HandleMap {
	hm := make(hog.HandleMap, 0, len(services))
	h := uint16(10)
	for _, s := range services {
		handles := make([]uint16, 0, s.AttrCount())
		for i := 0; i < s.AttrCount(); i++ {
			handles = append(handles, h)
			h++
		}
		hm = append(hm, handles)
	}
	return hm
}

func TestTreeShape(t *testing.T) {
	tests := []struct {
		kind     hog.Kind
		hidAttrs int
	}{
		{hog.Joystick, 7},
		{hog.Mouse, 7},
		{hog.Keyboard, 9},
	}
	for _, tt := range tests {
		p := New(tt.kind, DefaultInfo())
		if len(p.Services) != 3 {
			t.Fatalf("%s: want 3 services, got %d", tt.kind, len(p.Services))
		}
		if !p.Services[0].UUID.Equal(DeviceInfoUUID) ||
			!p.Services[1].UUID.Equal(BatteryUUID) ||
			!p.Services[2].UUID.Equal(HIDUUID) {
			t.Fatalf("%s: services out of order", tt.kind)
		}
		if got := p.Services[0].AttrCount(); got != 7 {
			t.Fatalf("%s: device info attrs: want 7, got %d", tt.kind, got)
		}
		if got := p.Services[1].AttrCount(); got != 3 {
			t.Fatalf("%s: battery attrs: want 3, got %d", tt.kind, got)
		}
		if got := p.Services[2].AttrCount(); got != tt.hidAttrs {
			t.Fatalf("%s: hid attrs: want %d, got %d", tt.kind, tt.hidAttrs, got)
		}
	}
}

func TestBindPositionalIntegrity(t *testing.T) {
	p := New(hog.Keyboard, DefaultInfo())
	hm := fakeHandles(p.Services)

	b, err := p.Bind(hm)
	if err != nil {
		t.Fatal(err)
	}

	// Every named field must land on its positional handle.
	want := map[string]uint16{
		"model":      hm[0][0],
		"serial":     hm[0][1],
		"firmware":   hm[0][2],
		"hardware":   hm[0][3],
		"software":   hm[0][4],
		"vendor":     hm[0][5],
		"pnp":        hm[0][6],
		"battery":    hm[1][0],
		"batteryccc": hm[1][1],
		"batteryfmt": hm[1][2],
		"hidinfo":    hm[2][0],
		"reportmap":  hm[2][1],
		"ctrl":       hm[2][2],
		"input":      hm[2][3],
		"inputccc":   hm[2][4],
		"inputref":   hm[2][5],
		"output":     hm[2][6],
		"outputref":  hm[2][7],
		"protomode":  hm[2][8],
	}
	got := map[string]uint16{
		"model":      b.ModelNumber,
		"serial":     b.SerialNumber,
		"firmware":   b.FirmwareRevision,
		"hardware":   b.HardwareRevision,
		"software":   b.SoftwareRevision,
		"vendor":     b.Manufacturer,
		"pnp":        b.PnPID,
		"battery":    b.BatteryLevel,
		"batteryccc": b.BatteryCCC,
		"batteryfmt": b.BatteryFormat,
		"hidinfo":    b.HIDInformation,
		"reportmap":  b.ReportMap,
		"ctrl":       b.ControlPoint,
		"input":      b.InputReport,
		"inputccc":   b.InputCCC,
		"inputref":   b.InputReference,
		"output":     b.OutputReport,
		"outputref":  b.OutputReference,
		"protomode":  b.ProtocolMode,
	}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("%s: want handle %d, got %d", name, w, got[name])
		}
	}
}

func TestBindJoystickHasNoOutputReport(t *testing.T) {
	p := New(hog.Joystick, DefaultInfo())
	b, err := p.Bind(fakeHandles(p.Services))
	if err != nil {
		t.Fatal(err)
	}
	if b.OutputReport != 0 || b.OutputReference != 0 {
		t.Fatal("joystick must not bind an output report")
	}
	if b.ProtocolMode != fakeHandles(p.Services)[2][6] {
		t.Fatal("protocol mode misplaced without output report")
	}
}

func TestBindRejectsWrongShape(t *testing.T) {
	p := New(hog.Keyboard, DefaultInfo())
	hm := fakeHandles(p.Services)
	hm[2] = hm[2][:len(hm[2])-1] // one handle short

	if _, err := p.Bind(hm); err == nil {
		t.Fatal("expected bind error for short handle map")
	}
}

func TestInitialValuesLandOnDeclaredHandles(t *testing.T) {
	p := New(hog.Keyboard, DefaultInfo())
	b, err := p.Bind(fakeHandles(p.Services))
	if err != nil {
		t.Fatal(err)
	}

	vals := p.InitialValues(b, 100, report.Initial(hog.Keyboard))
	byHandle := make(map[uint16][]byte, len(vals))
	for _, hv := range vals {
		byHandle[hv.Handle] = hv.Value
	}

	if !bytes.Equal(byHandle[b.HIDInformation], []byte{0x01, 0x01, 0x00, 0x02}) {
		t.Fatalf("hid information blob: %x", byHandle[b.HIDInformation])
	}
	if !bytes.Equal(byHandle[b.ReportMap], report.Descriptor(hog.Keyboard)) {
		t.Fatal("report map bytes misplaced")
	}
	if !bytes.Equal(byHandle[b.InputReference], []byte{0x01, 0x01}) {
		t.Fatalf("input reference: %x", byHandle[b.InputReference])
	}
	if !bytes.Equal(byHandle[b.OutputReference], []byte{0x01, 0x02}) {
		t.Fatalf("output reference: %x", byHandle[b.OutputReference])
	}
	if !bytes.Equal(byHandle[b.ProtocolMode], []byte{0x01}) {
		t.Fatalf("protocol mode: %x", byHandle[b.ProtocolMode])
	}
	if !bytes.Equal(byHandle[b.BatteryLevel], []byte{100}) {
		t.Fatalf("battery level: %x", byHandle[b.BatteryLevel])
	}
	if !bytes.Equal(byHandle[b.BatteryFormat], []byte{0x04, 0x00, 0xad, 0x27, 0x01, 0x00, 0x00}) {
		t.Fatalf("battery format: %x", byHandle[b.BatteryFormat])
	}
	if !bytes.Equal(byHandle[b.InputReport], report.Initial(hog.Keyboard)) {
		t.Fatal("initial input report misplaced")
	}
}

func TestStringPackTruncatesAndPads(t *testing.T) {
	long := stringPack("this model number is much longer than its field", modelWidth)
	if len(long) != modelWidth {
		t.Fatalf("want %d bytes, got %d", modelWidth, len(long))
	}
	if string(long) != "this model number is muc" {
		t.Fatalf("truncation wrong: %q", long)
	}

	short := stringPack("1", serialWidth)
	if len(short) != serialWidth || short[0] != '1' || short[1] != 0 {
		t.Fatalf("padding wrong: %v", short)
	}
}

func TestPnPPack(t *testing.T) {
	b := pnpPack(PnPID{Source: 0x01, Vendor: 0xfe61, Product: 0x0102, Version: 0x0123})
	want := []byte{0x01, 0x61, 0xfe, 0x02, 0x01, 0x23, 0x01}
	if !bytes.Equal(b, want) {
		t.Fatalf("pnp: want %x, got %x", want, b)
	}
}
