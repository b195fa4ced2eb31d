package hog

// AttStatus is an ATT protocol status code, returned synchronously to the
// transport in answer to a characteristic read or write request.
// Refer to Bluetooth Core Specification Vol 3, Part F, 3.4.1.1.
type AttStatus byte

const (
	Success                    AttStatus = 0x00
	InvalidHandle              AttStatus = 0x01
	ReadNotPermitted           AttStatus = 0x02
	WriteNotPermitted          AttStatus = 0x03
	InsufficientAuthentication AttStatus = 0x05
	InsufficientAuthorization  AttStatus = 0x08
	AttributeNotFound          AttStatus = 0x0a
	InsufficientEncryption     AttStatus = 0x0f
)

var attStatusStrings = map[AttStatus]string{
	Success:                    "success",
	InvalidHandle:              "invalid handle",
	ReadNotPermitted:           "read not permitted",
	WriteNotPermitted:          "write not permitted",
	InsufficientAuthentication: "insufficient authentication",
	InsufficientAuthorization:  "insufficient authorization",
	AttributeNotFound:          "attribute not found",
	InsufficientEncryption:     "insufficient encryption",
}

func (s AttStatus) String() string {
	if v, ok := attStatusStrings[s]; ok {
		return v
	}
	return "unknown status"
}
