package hog

// Event is one of the closed set of stack events a Transport delivers to
// the engine. The engine matches the set exhaustively; events it does not
// expect in its current state are logged and ignored, never fatal.
type Event interface {
	event()
}

// CentralConnected reports that a central connected.
type CentralConnected struct {
	Conn uint16
}

// CentralDisconnected reports that the central disconnected.
type CentralDisconnected struct {
	Conn uint16
}

// MTUExchanged reports the negotiated ATT MTU.
type MTUExchanged struct {
	Conn uint16
	MTU  int
}

// ConnParamsUpdated reports new connection parameters.
type ConnParamsUpdated struct {
	Conn     uint16
	Interval uint16
	Latency  uint16
	Timeout  uint16
	Status   byte
}

// EncryptionUpdated reports a change of the link security state.
type EncryptionUpdated struct {
	Conn          uint16
	Encrypted     bool
	Authenticated bool
	Bonded        bool
	KeySize       int
}

// PasskeyAction asks the engine to supply, display or confirm a passkey.
type PasskeyAction struct {
	Conn    uint16
	Action  int
	Passkey uint32
}

// SecretRequest asks for a bonding secret, either by exact key (Key set)
// or by position among secrets of the given type (Key nil, Index set).
// The Response carries the value, or OK=false if absent.
type SecretRequest struct {
	Type  int
	Index int
	Key   []byte
}

// SecretStored stores or, when Value is nil, deletes a bonding secret.
// The Response reports via OK whether the mutation applied.
type SecretStored struct {
	Type  int
	Key   []byte
	Value []byte
}

// CharacteristicWritten reports that the central wrote a characteristic.
type CharacteristicWritten struct {
	Conn   uint16
	Handle uint16
}

// ReadRequest asks whether the central may read a characteristic. The
// Response status is returned to the ATT layer verbatim.
type ReadRequest struct {
	Conn   uint16
	Handle uint16
}

func (CentralConnected) event()      {}
func (CentralDisconnected) event()   {}
func (MTUExchanged) event()          {}
func (ConnParamsUpdated) event()     {}
func (EncryptionUpdated) event()     {}
func (PasskeyAction) event()         {}
func (SecretRequest) event()         {}
func (SecretStored) event()          {}
func (CharacteristicWritten) event() {}
func (ReadRequest) event()           {}

// Response is the synchronous answer to an Event. Status answers
// ReadRequest, Value answers SecretRequest, OK answers the secret events.
type Response struct {
	Status AttStatus
	Value  []byte
	OK     bool
}

// EventHandler consumes a stack event and returns its answer. It is
// invoked from the transport's context and must not block.
type EventHandler func(Event) Response

// Answered is a convenience Response carrying only a status.
func Answered(s AttStatus) Response { return Response{Status: s} }
