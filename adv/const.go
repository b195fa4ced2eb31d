package adv

import "github.com/pkg/errors"

// MaxEIRPacketLength is the maximum length of a legacy advertising PDU.
const MaxEIRPacketLength = 31

// ErrNotFit means the field does not fit into the packet.
var ErrNotFit = errors.New("field does not fit")

// ErrInvalid means the field content is invalid.
var ErrInvalid = errors.New("invalid field")

// Flags byte bits.
const (
	FlagLimitedDiscoverable = 0x01
	FlagGeneralDiscoverable = 0x02
	FlagLEOnly              = 0x04 // BR/EDR not supported
	FlagBREDRController     = 0x08
	FlagBREDRHost           = 0x10
)

// FlagsFor builds the flags byte: limited or general discoverable, plus
// either the LE-only bit or the BR/EDR controller+host bits.
func FlagsFor(limited, brEDR bool) byte {
	f := byte(FlagGeneralDiscoverable)
	if limited {
		f = FlagLimitedDiscoverable
	}
	if brEDR {
		return f | FlagBREDRController | FlagBREDRHost
	}
	return f | FlagLEOnly
}
