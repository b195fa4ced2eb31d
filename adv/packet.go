// Package adv builds and parses BLE advertising payloads.
//
// A payload is a sequence of TLV records [length][type][payload] where
// length counts the type byte plus the payload. Refer to Supplement to
// Bluetooth Core Specification, Part A.
package adv

import (
	"encoding/binary"

	"github.com/pkg/errors"

	hog "github.com/ble-hog/hog"
)

// Packet is an advertising packet or scan response under construction,
// or a received payload decoded into its records.
type Packet struct {
	b []byte
	m map[string]interface{}
}

// Bytes returns the bytes of the packet.
func (p *Packet) Bytes() []byte {
	return p.b
}

// Len returns the length of the packet.
func (p *Packet) Len() int {
	return len(p.b)
}

// NewPacket builds an advertising packet from the given fields.
func NewPacket(fields ...Field) (*Packet, error) {
	p := &Packet{b: make([]byte, 0, MaxEIRPacketLength)}
	for _, f := range fields {
		if err := f(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewRawPacket decodes a received payload into a packet whose records can
// be read back through the accessors.
func NewRawPacket(b []byte) (*Packet, error) {
	m, err := decode(b)
	if err != nil {
		return nil, errors.Wrap(err, "pdu decode")
	}
	return &Packet{b: b, m: m}, nil
}

// Field is an advertising field which can be appended to a packet.
type Field func(p *Packet) error

// Append appends a field to the packet. It returns ErrNotFit if the field
// doesn't fit into the packet, and leaves the packet intact.
func (p *Packet) Append(f Field) error {
	return f(p)
}

func (p *Packet) append(typ byte, b []byte) error {
	if p.Len()+1+1+len(b) > MaxEIRPacketLength {
		return ErrNotFit
	}
	p.b = append(p.b, byte(len(b)+1))
	p.b = append(p.b, typ)
	p.b = append(p.b, b...)
	return nil
}

// Raw appends preassembled record bytes to the packet.
func Raw(b []byte) Field {
	return func(p *Packet) error {
		if p.Len()+len(b) > MaxEIRPacketLength {
			return ErrNotFit
		}
		p.b = append(p.b, b...)
		return nil
	}
}

// Flags is the advertising flags record.
func Flags(f byte) Field {
	return func(p *Packet) error {
		return p.append(types.flags, []byte{f})
	}
}

// ShortName is a shortened local name.
func ShortName(n string) Field {
	return func(p *Packet) error {
		return p.append(types.nameshort, []byte(n))
	}
}

// CompleteName is a complete local name.
func CompleteName(n string) Field {
	return func(p *Packet) error {
		return p.append(types.namecomp, []byte(n))
	}
}

// AllUUID is one entry of the complete service UUID list. The record type
// follows the natural byte width of the UUID.
func AllUUID(u hog.UUID) Field {
	return func(p *Packet) error {
		switch u.Len() {
		case 2:
			return p.append(types.uuid16comp, u)
		case 4:
			return p.append(types.uuid32comp, u)
		case 16:
			return p.append(types.uuid128comp, u)
		}
		return ErrInvalid
	}
}

// SomeUUID is one entry of the incomplete service UUID list.
func SomeUUID(u hog.UUID) Field {
	return func(p *Packet) error {
		switch u.Len() {
		case 2:
			return p.append(types.uuid16inc, u)
		case 4:
			return p.append(types.uuid32inc, u)
		case 16:
			return p.append(types.uuid128inc, u)
		}
		return ErrInvalid
	}
}

// Appearance is the GAP appearance record, little-endian 16 bit.
func Appearance(a uint16) Field {
	return func(p *Packet) error {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, a)
		return p.append(types.appearance, b)
	}
}

// Flags returns the flags byte of a decoded packet.
func (p *Packet) Flags() (flags byte, present bool) {
	if b, ok := p.m[keys.flags].([]byte); ok {
		return b[0], true
	}
	return 0, false
}

// LocalName returns the short or complete local name, if present.
func (p *Packet) LocalName() string {
	if b, ok := p.m[keys.namecomp].([]byte); ok {
		return string(b)
	}
	return ""
}

// Appearance returns the appearance value, if present.
func (p *Packet) Appearance() (uint16, bool) {
	if b, ok := p.m[keys.appearance].([]byte); ok && len(b) >= 2 {
		return binary.LittleEndian.Uint16(b), true
	}
	return 0, false
}

// UUIDs returns the advertised service UUIDs of every width.
func (p *Packet) UUIDs() []hog.UUID {
	var u []hog.UUID
	for _, k := range []string{keys.uuid16comp, keys.uuid32comp, keys.uuid128comp} {
		v, ok := p.m[k].([]interface{})
		if !ok {
			continue
		}
		for _, vv := range v {
			if b, ok := vv.([]byte); ok {
				u = append(u, hog.UUID(b))
			}
		}
	}
	return u
}

// Payload assembles the standard HID advertising payload: flags, the
// local name, the complete service UUID list and the appearance.
func Payload(name string, services []hog.UUID, appearance uint16, limited, brEDR bool) ([]byte, error) {
	fields := []Field{Flags(FlagsFor(limited, brEDR))}
	if name != "" {
		fields = append(fields, CompleteName(name))
	}
	for _, u := range services {
		fields = append(fields, AllUUID(u))
	}
	if appearance != 0 {
		fields = append(fields, Appearance(appearance))
	}
	p, err := NewPacket(fields...)
	if err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}
