package adv

import (
	"bytes"
	"testing"
)

type testPdu struct {
	b []byte
}

func (t *testPdu) add(recTyp byte, recBytes []byte) {
	t.b = append(t.b, byte(len(recBytes)+1), recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) bytes() []byte {
	return t.b
}

func TestParserSkipsUnknownTypes(t *testing.T) {
	p := testPdu{}
	p.add(0x01, []byte{0x06})
	p.add(0xd0, []byte{0xde, 0xad}) // not an assigned AD type
	p.add(0x09, []byte("HID"))

	pkt, err := NewRawPacket(p.bytes())
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if name := pkt.LocalName(); name != "HID" {
		t.Fatalf("name: want HID, got %q", name)
	}
	if f, ok := pkt.Flags(); !ok || f != 0x06 {
		t.Fatalf("flags: want 0x06, got 0x%02x (present %v)", f, ok)
	}
}

func TestParserRejectsTruncatedRecord(t *testing.T) {
	// The record claims 5 payload bytes but the buffer ends early.
	pdu := []byte{0x06, 0x09, 'a', 'b'}
	if _, err := NewRawPacket(pdu); err == nil {
		t.Fatal("expected decode error for truncated record")
	}
}

func TestParserRejectsRaggedUUIDList(t *testing.T) {
	p := testPdu{}
	p.add(0x03, []byte{0x12, 0x18, 0xbb}) // 3 bytes cannot split into uuid16s
	if _, err := NewRawPacket(p.bytes()); err == nil {
		t.Fatal("expected decode error for ragged uuid list")
	}
}

func TestParserMergesUUIDRecords(t *testing.T) {
	p := testPdu{}
	p.add(0x03, []byte{0x12, 0x18})
	p.add(0x03, []byte{0x0f, 0x18})

	pkt, err := NewRawPacket(p.bytes())
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	uu := pkt.UUIDs()
	if len(uu) != 2 {
		t.Fatalf("want 2 uuids, got %d", len(uu))
	}
	if !bytes.Equal(uu[0], []byte{0x12, 0x18}) || !bytes.Equal(uu[1], []byte{0x0f, 0x18}) {
		t.Fatalf("unexpected uuids %v", uu)
	}
}
