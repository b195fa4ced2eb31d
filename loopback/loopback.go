// Package loopback provides an in-memory Transport. It assigns handles
// the way a real stack would (sequentially over the declared attribute
// order), keeps a characteristic value table, and records notifications
// and advertising so tests and examples can run without a radio.
package loopback

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	hog "github.com/ble-hog/hog"
)

// Notification is one recorded notify call.
type Notification struct {
	Conn   uint16
	Handle uint16
	Value  []byte
}

// Transport is an in-memory hog.Transport.
type Transport struct {
	mu      sync.Mutex
	handler hog.EventHandler

	active      bool
	advertising bool
	config      hog.Config

	nextHandle uint16
	values     map[uint16][]byte

	notifications []Notification
	disconnected  []uint16
	passkeys      map[uint16]uint32

	// FailRegistration makes the next RegisterServices call fail, for
	// exercising the fatal start path.
	FailRegistration bool
}

// New returns an idle loopback transport.
func New() *Transport {
	return &Transport{
		nextHandle: 3, // leave room for the GAP/GATT attributes a stack owns
		values:     make(map[uint16][]byte),
		passkeys:   make(map[uint16]uint32),
	}
}

func (t *Transport) SetEventHandler(h hog.EventHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = h
}

func (t *Transport) Activate() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = true
	return nil
}

func (t *Transport) Deactivate() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
	t.advertising = false
	return nil
}

func (t *Transport) Configure(c hog.Config) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.config = c
	return nil
}

func (t *Transport) RegisterServices(services []hog.Service) (hog.HandleMap, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return nil, errors.New("transport not active")
	}
	if t.FailRegistration {
		return nil, errors.New("registration rejected")
	}

	hm := make(hog.HandleMap, 0, len(services))
	for _, s := range services {
		handles := make([]uint16, 0, s.AttrCount())
		for _, c := range s.Characteristics {
			t.nextHandle += 2 // declaration + value attribute
			handles = append(handles, t.nextHandle)
			t.values[t.nextHandle] = nil
			for range c.Descriptors {
				t.nextHandle++
				handles = append(handles, t.nextHandle)
				t.values[t.nextHandle] = nil
			}
		}
		hm = append(hm, handles)
	}
	return hm, nil
}

func (t *Transport) WriteCharacteristic(handle uint16, value []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.values[handle]; !ok {
		return errors.Errorf("unknown handle %d", handle)
	}
	t.values[handle] = append([]byte(nil), value...)
	return nil
}

func (t *Transport) ReadCharacteristic(handle uint16) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.values[handle]
	if !ok {
		return nil, errors.Errorf("unknown handle %d", handle)
	}
	return v, nil
}

func (t *Transport) Notify(conn, handle uint16, value []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.values[handle]; !ok {
		return errors.Errorf("unknown handle %d", handle)
	}
	t.values[handle] = append([]byte(nil), value...)
	t.notifications = append(t.notifications, Notification{
		Conn:   conn,
		Handle: handle,
		Value:  append([]byte(nil), value...),
	})
	return nil
}

func (t *Transport) StartAdvertising(payload []byte, interval time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return errors.New("transport not active")
	}
	t.advertising = true
	return nil
}

func (t *Transport) StopAdvertising() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.advertising = false
	return nil
}

func (t *Transport) Disconnect(conn uint16) error {
	t.mu.Lock()
	t.disconnected = append(t.disconnected, conn)
	t.mu.Unlock()
	return nil
}

func (t *Transport) Passkey(conn uint16, action int, reply uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.passkeys[conn] = reply
	return nil
}

// Inject delivers a stack event to the installed handler and returns the
// engine's synchronous response.
func (t *Transport) Inject(e hog.Event) hog.Response {
	t.mu.Lock()
	h := t.handler
	t.mu.Unlock()

	if h == nil {
		return hog.Response{}
	}
	return h(e)
}

// Advertising reports whether advertising is currently started.
func (t *Transport) Advertising() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advertising
}

// Active reports whether the transport is activated.
func (t *Transport) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Config returns the last configuration pushed by the engine.
func (t *Transport) Config() hog.Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.config
}

// Value returns the current value of a handle.
func (t *Transport) Value(handle uint16) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.values[handle]
}

// Notifications returns the recorded notify calls.
func (t *Transport) Notifications() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Notification(nil), t.notifications...)
}

// Disconnected returns the handles passed to Disconnect.
func (t *Transport) Disconnected() []uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]uint16(nil), t.disconnected...)
}

// PasskeyReply returns the last passkey reply sent for a connection.
func (t *Transport) PasskeyReply(conn uint16) (uint32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.passkeys[conn]
	return v, ok
}
