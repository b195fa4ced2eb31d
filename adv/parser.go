package adv

import (
	"fmt"

	"github.com/pkg/errors"

	hog "github.com/ble-hog/hog"
)

// https://www.bluetooth.org/en-us/specification/assigned-numbers/generic-access-profile
var types = struct {
	flags       byte
	uuid16inc   byte
	uuid16comp  byte
	uuid32inc   byte
	uuid32comp  byte
	uuid128inc  byte
	uuid128comp byte
	nameshort   byte
	namecomp    byte
	txpwr       byte
	appearance  byte
	mfgdata     byte
}{
	flags:       0x01,
	uuid16inc:   0x02,
	uuid16comp:  0x03,
	uuid32inc:   0x04,
	uuid32comp:  0x05,
	uuid128inc:  0x06,
	uuid128comp: 0x07,
	nameshort:   0x08,
	namecomp:    0x09,
	txpwr:       0x0a,
	appearance:  0x19,
	mfgdata:     0xff,
}

var keys = struct {
	flags       string
	uuid16comp  string
	uuid32comp  string
	uuid128comp string
	namecomp    string
	txpwr       string
	appearance  string
	mfgdata     string
}{
	flags:       "flags",
	uuid16comp:  "uuid16",
	uuid32comp:  "uuid32",
	uuid128comp: "uuid128",
	namecomp:    "name",
	txpwr:       "txpwr",
	appearance:  "appearance",
	mfgdata:     "mfg",
}

type pduRecord struct {
	arrayElementSz int
	minSz          int
	key            string
}

var pduDecodeMap = map[byte]pduRecord{
	types.uuid16inc:   {2, 2, keys.uuid16comp},
	types.uuid16comp:  {2, 2, keys.uuid16comp},
	types.uuid32inc:   {4, 4, keys.uuid32comp},
	types.uuid32comp:  {4, 4, keys.uuid32comp},
	types.uuid128inc:  {16, 16, keys.uuid128comp},
	types.uuid128comp: {16, 16, keys.uuid128comp},
	types.nameshort:   {0, 1, keys.namecomp},
	types.namecomp:    {0, 1, keys.namecomp},
	types.txpwr:       {0, 1, keys.txpwr},
	types.appearance:  {0, 2, keys.appearance},
	types.flags:       {0, 1, keys.flags},
	types.mfgdata:     {0, 1, keys.mfgdata},
}

func getArray(size int, bytes []byte) ([]interface{}, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size")
	}

	if len(bytes) == 0 {
		return nil, fmt.Errorf("empty bytes")
	}

	count := len(bytes) / size
	if len(bytes)%size != 0 || count == 0 {
		return nil, fmt.Errorf("incorrect size")
	}

	arr := make([]interface{}, 0, count)
	for j := 0; j < len(bytes); j += size {
		arr = append(arr, bytes[j:j+size])
	}

	return arr, nil
}

// decode scans the TLV records of a raw advertising payload into a map
// keyed by record kind. Records with an unrecognized AD type are skipped;
// structurally broken records fail the whole payload.
func decode(pdu []byte) (map[string]interface{}, error) {
	if pdu == nil {
		return nil, fmt.Errorf("nil pdu")
	}

	m := make(map[string]interface{})
	for i := 0; (i + 1) < len(pdu); {

		// length @ offset 0, type @ offset 1, payload after
		length := int(pdu[i])
		typ := pdu[i+1]

		if length < 1 {
			return nil, fmt.Errorf("invalid record length %d", length)
		}

		if (i + length) >= len(pdu) {
			return nil, fmt.Errorf("buffer overflow: want %v, have %v", i+length, len(pdu))
		}

		start := i + 2
		end := start + length - 1
		bytes := pdu[start:end]

		dec, ok := pduDecodeMap[typ]
		if !ok {
			hog.GetLogger().Debugf("adv: skipping unsupported record type 0x%02x", typ)
		} else {
			if dec.minSz > len(bytes) {
				return nil, fmt.Errorf("adv type %v: min length %v, have %v", typ, dec.minSz, len(bytes))
			}

			if dec.arrayElementSz > 0 {
				arr, err := getArray(dec.arrayElementSz, bytes)
				if err != nil {
					return nil, errors.Wrapf(err, "adv type %v", typ)
				}
				if prev, ok := m[dec.key].([]interface{}); ok {
					arr = append(prev, arr...)
				}
				m[dec.key] = arr
			} else {
				m[dec.key] = bytes
			}
		}

		i += length + 1
	}

	return m, nil
}
