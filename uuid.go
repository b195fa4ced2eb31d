package hog

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/ble-hog/hog/sliceops"
)

// A UUID is a BLE UUID in little-endian byte order, either 2, 4 or 16
// bytes long.
type UUID []byte

// UUID16 returns a 16-bit SIG-assigned UUID.
func UUID16(i uint16) UUID {
	u := make(UUID, 2)
	binary.LittleEndian.PutUint16(u, i)
	return u
}

// UUID32 returns a 32-bit UUID.
func UUID32(i uint32) UUID {
	u := make(UUID, 4)
	binary.LittleEndian.PutUint32(u, i)
	return u
}

// Parse parses a standard hexadecimal UUID string, with or without
// separating dashes, into a UUID.
func Parse(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "parse uuid")
	}
	switch len(b) {
	case 2, 4, 16:
	default:
		return nil, errors.Errorf("invalid uuid length %d", len(b))
	}
	return UUID(sliceops.SwapBuf(b)), nil
}

// MustParse parses a UUID string and panics on failure. Intended for
// package-level UUID tables.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID in bytes.
func (u UUID) Len() int { return len(u) }

// Equal reports whether two UUIDs have the same bytes.
func (u UUID) Equal(v UUID) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i] != v[i] {
			return false
		}
	}
	return true
}

// String returns the UUID in the conventional big-endian hex form.
func (u UUID) String() string {
	return hex.EncodeToString(sliceops.SwapBuf(u))
}
