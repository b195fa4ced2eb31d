package device

// State is the lifecycle state of the device.
type State int

const (
	// Stopped is the initial state: the transport is inactive and no
	// services are registered.
	Stopped State = iota
	// Idle means the transport is active and the services registered,
	// but the device is neither advertising nor connected.
	Idle
	// Advertising means the device is discoverable.
	Advertising
	// Connected means a central holds the (single) connection.
	Connected
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Idle:
		return "idle"
	case Advertising:
		return "advertising"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}
