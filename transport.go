package hog

import "time"

// IOCapability describes the pairing input/output capability of the
// device, which determines the pairing procedure a central will use.
type IOCapability int

const (
	IOCapDisplayOnly IOCapability = iota
	IOCapDisplayYesNo
	IOCapKeyboardOnly
	IOCapNoInputOutput
	IOCapKeyboardDisplay
)

// Passkey actions a stack may request during pairing.
const (
	PasskeyInput             = 2 // the peer displays, we enter
	PasskeyDisplay           = 3 // we display, the peer enters
	PasskeyNumericComparison = 4 // both display, both confirm
)

// Config carries the GAP/SMP parameters the engine pushes into the
// transport during Start.
type Config struct {
	Name     string
	MTU      int
	Bonding  bool
	LESecure bool
	MITM     bool
	IOCap    IOCapability
}

// Transport is the boundary to the underlying BLE stack. The engine only
// requires the peripheral-role subset: service registration, attribute
// value access, notification, advertising and the security knobs.
//
// A Transport delivers stack events by invoking the installed EventHandler
// synchronously from its own context; the handler never blocks and its
// Response is the synchronous answer (status code, secret value).
type Transport interface {
	SetEventHandler(EventHandler)
	Activate() error
	Deactivate() error
	Configure(Config) error

	// RegisterServices registers an immutable service tree and returns
	// the positional handle map. Handles are valid until Deactivate.
	RegisterServices([]Service) (HandleMap, error)

	WriteCharacteristic(handle uint16, value []byte) error
	ReadCharacteristic(handle uint16) ([]byte, error)
	Notify(conn, handle uint16, value []byte) error

	StartAdvertising(payload []byte, interval time.Duration) error
	StopAdvertising() error

	Disconnect(conn uint16) error

	// Passkey answers a PasskeyAction event: the reply is a passkey for
	// display/input actions, or 0/1 for numeric comparison.
	Passkey(conn uint16, action int, reply uint32) error
}
