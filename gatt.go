package hog

import "github.com/pkg/errors"

// Property is a characteristic property or descriptor permission bitmask.
type Property byte

const (
	PropRead Property = 1 << iota
	PropWrite
	PropWriteNoResponse
	PropNotify
)

// ReadWrite is the permission set of a client-writable descriptor such as
// the Client Characteristic Configuration.
const ReadWrite = PropRead | PropWrite

// Descriptor declares a characteristic descriptor within a service table.
type Descriptor struct {
	UUID        UUID
	Permissions Property
}

// Characteristic declares a characteristic within a service table.
type Characteristic struct {
	UUID        UUID
	Properties  Property
	Descriptors []Descriptor
}

// Service declares a GATT service: a UUID and an ordered characteristic
// list. Trees built from these are immutable once handed to a Transport.
type Service struct {
	UUID            UUID
	Characteristics []Characteristic
}

// AttrCount returns the number of handle-bearing attributes the service
// declares: one per characteristic plus one per descriptor.
func (s Service) AttrCount() int {
	n := 0
	for _, c := range s.Characteristics {
		n += 1 + len(c.Descriptors)
	}
	return n
}

// HandleMap holds the transport-assigned value handles for a registered
// service tree, one slice per service, in exactly the declared attribute
// order (characteristics followed by their descriptors, in table order).
// The correspondence is positional; the engine never looks handles up by
// UUID.
type HandleMap [][]uint16

// Validate checks the map shape against the tree it was assigned for.
func (hm HandleMap) Validate(services []Service) error {
	if len(hm) != len(services) {
		return errors.Errorf("handle map has %d services, tree has %d", len(hm), len(services))
	}
	for i, s := range services {
		if want, got := s.AttrCount(), len(hm[i]); want != got {
			return errors.Errorf("service %s: %d handles for %d attributes", s.UUID, got, want)
		}
	}
	return nil
}

// HandleValue pairs a transport handle with the value to store in it.
type HandleValue struct {
	Handle uint16
	Value  []byte
}
