package adv

import (
	"bytes"
	"strings"
	"testing"

	hog "github.com/ble-hog/hog"
)

func TestPayloadRoundTrip(t *testing.T) {
	payload, err := Payload("Joystick", []hog.UUID{hog.UUID16(0x1812)}, 963, false, false)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	pkt, err := NewRawPacket(payload)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if name := pkt.LocalName(); name != "Joystick" {
		t.Fatalf("name: want Joystick, got %q", name)
	}
	uu := pkt.UUIDs()
	if len(uu) != 1 || !uu[0].Equal(hog.UUID16(0x1812)) {
		t.Fatalf("uuids: want [0x1812], got %v", uu)
	}
	a, ok := pkt.Appearance()
	if !ok || a != 963 {
		t.Fatalf("appearance: want 963, got %d (present %v)", a, ok)
	}
}

func TestPayloadRecordStructure(t *testing.T) {
	payload, err := Payload("J", []hog.UUID{hog.UUID16(0x1812)}, 963, false, false)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	want := []byte{
		0x02, 0x01, 0x06, // flags: general discoverable, LE only
		0x02, 0x09, 'J', // complete local name
		0x03, 0x03, 0x12, 0x18, // complete uuid16 list
		0x03, 0x19, 0xc3, 0x03, // appearance 963 little endian
	}
	if !bytes.Equal(payload, want) {
		t.Fatalf("payload:\nwant %x\ngot  %x", want, payload)
	}
}

func TestFlagsFor(t *testing.T) {
	tests := []struct {
		limited, brEDR bool
		want           byte
	}{
		{false, false, 0x06},
		{true, false, 0x05},
		{false, true, 0x1a},
		{true, true, 0x19},
	}
	for _, tt := range tests {
		if got := FlagsFor(tt.limited, tt.brEDR); got != tt.want {
			t.Errorf("FlagsFor(%v, %v) = 0x%02x, want 0x%02x", tt.limited, tt.brEDR, got, tt.want)
		}
	}
}

func TestPacketOverflow(t *testing.T) {
	long := strings.Repeat("x", MaxEIRPacketLength)
	p, err := NewPacket(Flags(0x06))
	if err != nil {
		t.Fatalf("new packet: %v", err)
	}
	if err := p.Append(CompleteName(long)); err != ErrNotFit {
		t.Fatalf("want ErrNotFit, got %v", err)
	}
	// the packet is left intact
	if p.Len() != 3 {
		t.Fatalf("packet modified on failed append: len %d", p.Len())
	}
}

func TestUUIDWidthSelection(t *testing.T) {
	u128 := hog.MustParse("00010000-0001-1000-8000-00805f9b34fb")
	p, err := NewPacket(AllUUID(hog.UUID16(0x1812)), AllUUID(hog.UUID32(0x12345678)), AllUUID(u128))
	if err != nil {
		t.Fatalf("new packet: %v", err)
	}

	pkt, err := NewRawPacket(p.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	uu := pkt.UUIDs()
	if len(uu) != 3 {
		t.Fatalf("want 3 uuids, got %d", len(uu))
	}
	widths := []int{uu[0].Len(), uu[1].Len(), uu[2].Len()}
	if widths[0] != 2 || widths[1] != 4 || widths[2] != 16 {
		t.Fatalf("unexpected widths %v", widths)
	}
}
