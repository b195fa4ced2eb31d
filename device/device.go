// Package device implements the HID-over-GATT peripheral engine: the
// lifecycle state machine that ties the profile table, the report codecs,
// the bonding secrets and the security policy to a Transport.
//
// One engine drives one transport and serves at most one central, as the
// profile mandates. All mutation funnels through a single mutex: the
// transport's event context and the embedder's driving task may call in
// concurrently, but every operation runs to completion before the next.
package device

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	hog "github.com/ble-hog/hog"
	"github.com/ble-hog/hog/adv"
	"github.com/ble-hog/hog/profile"
	"github.com/ble-hog/hog/report"
	"github.com/ble-hog/hog/secrets"
	"github.com/ble-hog/hog/security"
)

// DefaultMTU is the ATT MTU configured at start, before the central
// negotiates a larger one.
const DefaultMTU = 23

// DefaultAdvInterval is the advertising interval used by StartAdvertising.
const DefaultAdvInterval = 100 * time.Millisecond

// connection is the context of the active central connection. It exists
// only while connected and is owned exclusively by the engine.
type connection struct {
	handle uint16
	link   security.Link
}

// Device is the profile engine.
type Device struct {
	kind      hog.Kind
	transport hog.Transport
	name      string
	prof      *profile.Profile
	policy    *security.Policy
	store     *secrets.Store
	log       hog.Logger

	advInterval time.Duration

	mu       sync.Mutex
	state    State
	conn     *connection
	bindings *profile.Bindings
	battery  byte
	payload  []byte

	// connectedCh is closed on the transition to Connected, waking any
	// AdvertiseFor waiter. Recreated whenever the connection drops.
	connectedCh chan struct{}
	// stopCh is closed by Stop so an AdvertiseFor waiter does not sleep
	// out its full duration on a stopped device. Re-armed by Start.
	stopCh chan struct{}

	stateFn  func(State)
	outputFn func(report.LEDs)
}

// New builds a device engine of the given kind over a transport. The
// returned device is Stopped; call Start to bring it up.
func New(kind hog.Kind, transport hog.Transport, opts ...Option) *Device {
	d := &Device{
		kind:        kind,
		transport:   transport,
		name:        defaultName(kind),
		battery:     100,
		advInterval: DefaultAdvInterval,
		connectedCh: make(chan struct{}),
		stopCh:      make(chan struct{}),
	}

	cfg := config{
		info:     profile.DefaultInfo(),
		security: security.Defaults(),
	}
	for _, opt := range opts {
		opt(d, &cfg)
	}

	if d.log == nil {
		d.log = hog.GetLogger().ChildLogger(map[string]interface{}{
			"device": kind.String(),
		})
	}
	if d.store == nil {
		d.store = secrets.New(nil)
	}
	d.policy = security.New(cfg.security)
	if cfg.passkeyFn != nil {
		d.policy.SetPasskeyFunc(cfg.passkeyFn)
	}
	d.prof = profile.New(kind, cfg.info)

	return d
}

// Start loads the bonding secrets, activates and configures the
// transport, registers the service tree and writes the initial
// characteristic values. A transport registration failure is fatal: the
// transport is deactivated again and the device remains Stopped.
func (d *Device) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Stopped {
		return nil
	}

	d.store.Load()

	d.transport.SetEventHandler(d.handleEvent)
	if err := d.transport.Activate(); err != nil {
		return errors.Wrap(err, "activate transport")
	}

	secCfg := d.policy.Config()
	err := d.transport.Configure(hog.Config{
		Name:     d.name,
		MTU:      DefaultMTU,
		Bonding:  secCfg.Bonding,
		LESecure: secCfg.LESecure,
		MITM:     secCfg.MITM,
		IOCap:    secCfg.IOCap,
	})
	if err != nil {
		d.transport.Deactivate()
		return errors.Wrap(err, "configure transport")
	}

	hm, err := d.transport.RegisterServices(d.prof.Services)
	if err != nil {
		d.transport.Deactivate()
		return errors.Wrap(err, "register services")
	}

	bindings, err := d.prof.Bind(hm)
	if err != nil {
		d.transport.Deactivate()
		return err
	}
	d.bindings = bindings

	for _, hv := range d.prof.InitialValues(bindings, d.battery, report.Initial(d.kind)) {
		if err := d.transport.WriteCharacteristic(hv.Handle, hv.Value); err != nil {
			d.transport.Deactivate()
			return errors.Wrapf(err, "write initial value for handle %d", hv.Handle)
		}
	}

	d.payload, err = adv.Payload(d.name, d.prof.AdvertisedServices(), d.kind.Appearance(), false, false)
	if err != nil {
		d.transport.Deactivate()
		return errors.Wrap(err, "build advertising payload")
	}

	d.stopCh = make(chan struct{})
	d.setState(Idle)
	d.log.Infof("device started: %s", d.name)
	return nil
}

// Stop forces disconnection, halts advertising and deactivates the
// transport. It is valid, and a no-op beyond the state change, from any
// state; secrets stay on their backend for the next Start.
func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Stopped {
		return nil
	}

	if d.state == Advertising {
		if err := d.transport.StopAdvertising(); err != nil {
			d.log.Warnf("stop advertising: %v", err)
		}
	}
	if d.conn != nil {
		if err := d.transport.Disconnect(d.conn.handle); err != nil {
			d.log.Warnf("disconnect: %v", err)
		}
		d.dropConnection()
	}
	if err := d.transport.Deactivate(); err != nil {
		d.log.Warnf("deactivate transport: %v", err)
	}

	d.bindings = nil
	close(d.stopCh)
	d.setState(Stopped)
	d.log.Info("device stopped")
	return nil
}

// StartAdvertising begins advertising the HID service. It is a no-op
// unless the device is Idle.
func (d *Device) StartAdvertising() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.startAdvertising()
}

func (d *Device) startAdvertising() error {
	if d.state != Idle {
		d.log.Debugf("start advertising ignored in state %s", d.state)
		return nil
	}
	if err := d.transport.StartAdvertising(d.payload, d.advInterval); err != nil {
		return errors.Wrap(err, "start advertising")
	}
	d.setState(Advertising)
	return nil
}

// StopAdvertising stops advertising. It is a no-op unless the device is
// Advertising.
func (d *Device) StopAdvertising() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopAdvertising()
}

func (d *Device) stopAdvertising() error {
	if d.state != Advertising {
		return nil
	}
	if err := d.transport.StopAdvertising(); err != nil {
		return errors.Wrap(err, "stop advertising")
	}
	d.setState(Idle)
	return nil
}

// State returns the current lifecycle state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// IsRunning reports whether the device is not Stopped.
func (d *Device) IsRunning() bool { return d.State() != Stopped }

// IsConnected reports whether a central is connected.
func (d *Device) IsConnected() bool { return d.State() == Connected }

// IsAdvertising reports whether the device is advertising.
func (d *Device) IsAdvertising() bool { return d.State() == Advertising }

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// Kind returns the device kind.
func (d *Device) Kind() hog.Kind { return d.kind }

// setState applies a transition and fires the state handler. The handler
// runs synchronously under the engine lock and must not block or call
// back into the device.
func (d *Device) setState(s State) {
	if d.state == s {
		return
	}
	d.log.Debugf("state %s -> %s", d.state, s)
	d.state = s
	if d.stateFn != nil {
		d.stateFn(s)
	}
}

// SetStateHandler replaces the state-transition callback.
func (d *Device) SetStateHandler(fn func(State)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stateFn = fn
}

// SetOutputHandler replaces the keyboard LED output callback.
func (d *Device) SetOutputHandler(fn func(report.LEDs)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.outputFn = fn
}

// SetPasskeyFunc replaces the pairing interaction callback.
func (d *Device) SetPasskeyFunc(fn security.PasskeyFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.policy.SetPasskeyFunc(fn)
}

func defaultName(kind hog.Kind) string {
	switch kind {
	case hog.Joystick:
		return "Bluetooth Joystick"
	case hog.Mouse:
		return "Bluetooth Mouse"
	case hog.Keyboard:
		return "Bluetooth Keyboard"
	default:
		return "Generic HID Device"
	}
}

// dropConnection clears the connection context and re-arms the
// connected channel for the next AdvertiseFor waiter.
func (d *Device) dropConnection() {
	d.conn = nil
	d.connectedCh = make(chan struct{})
}
