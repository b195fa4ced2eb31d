package device

import (
	hog "github.com/ble-hog/hog"
	"github.com/ble-hog/hog/report"
	"github.com/ble-hog/hog/security"
)

// handleEvent is the single entry point for stack events. It is invoked
// synchronously from the transport's context, mutates engine state and
// returns its answer without blocking. Events that make no sense in the
// current state are logged and ignored; they never corrupt the machine.
func (d *Device) handleEvent(e hog.Event) hog.Response {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev := e.(type) {
	case hog.CentralConnected:
		return d.onConnect(ev)
	case hog.CentralDisconnected:
		return d.onDisconnect(ev)
	case hog.MTUExchanged:
		return d.onMTU(ev)
	case hog.ConnParamsUpdated:
		d.log.Debugf("connection parameters: interval=%d latency=%d timeout=%d status=%d",
			ev.Interval, ev.Latency, ev.Timeout, ev.Status)
		return hog.Response{}
	case hog.EncryptionUpdated:
		return d.onEncryption(ev)
	case hog.PasskeyAction:
		return d.onPasskey(ev)
	case hog.SecretRequest:
		return d.onSecretRequest(ev)
	case hog.SecretStored:
		return d.onSecretStored(ev)
	case hog.CharacteristicWritten:
		return d.onWritten(ev)
	case hog.ReadRequest:
		return d.onReadRequest(ev)
	default:
		d.log.Warnf("unhandled stack event %T", e)
		return hog.Response{}
	}
}

func (d *Device) onConnect(ev hog.CentralConnected) hog.Response {
	if d.state == Stopped {
		d.log.Warnf("connect event while stopped, ignored")
		return hog.Response{}
	}
	if d.conn != nil {
		// The profile allows a single central; a second connect event
		// replaces the stale context rather than corrupting it. The
		// connected channel is already closed for this connection and
		// must not be closed again.
		d.log.Warnf("connect event %d while connection %d active", ev.Conn, d.conn.handle)
		d.conn = &connection{handle: ev.Conn}
		return hog.Response{}
	}
	d.conn = &connection{handle: ev.Conn}
	close(d.connectedCh)
	d.setState(Connected)
	d.log.Infof("central connected: %d", ev.Conn)
	return hog.Response{}
}

func (d *Device) onDisconnect(ev hog.CentralDisconnected) hog.Response {
	if d.conn == nil {
		d.log.Debugf("disconnect event %d without connection, ignored", ev.Conn)
		return hog.Response{}
	}
	d.dropConnection()
	if d.state != Stopped {
		d.setState(Idle)
	}
	d.log.Infof("central disconnected: %d", ev.Conn)
	return hog.Response{}
}

func (d *Device) onMTU(ev hog.MTUExchanged) hog.Response {
	secCfg := d.policy.Config()
	err := d.transport.Configure(hog.Config{
		Name:     d.name,
		MTU:      ev.MTU,
		Bonding:  secCfg.Bonding,
		LESecure: secCfg.LESecure,
		MITM:     secCfg.MITM,
		IOCap:    secCfg.IOCap,
	})
	if err != nil {
		d.log.Warnf("reconfigure mtu: %v", err)
	}
	d.log.Debugf("mtu exchanged: %d", ev.MTU)
	return hog.Response{}
}

func (d *Device) onEncryption(ev hog.EncryptionUpdated) hog.Response {
	if d.conn == nil {
		d.log.Debugf("encryption update without connection, ignored")
		return hog.Response{}
	}
	d.conn.link = security.Link{
		Encrypted:     ev.Encrypted,
		Authenticated: ev.Authenticated,
		Bonded:        ev.Bonded,
		KeySize:       ev.KeySize,
	}
	d.log.Debugf("encryption update: encrypted=%v authenticated=%v bonded=%v keysize=%d",
		ev.Encrypted, ev.Authenticated, ev.Bonded, ev.KeySize)
	return hog.Response{}
}

func (d *Device) onPasskey(ev hog.PasskeyAction) hog.Response {
	reply, ok := d.policy.React(ev.Action)
	if !ok {
		reply = 0 // fail closed: a zero reply aborts the pairing
	}
	if err := d.transport.Passkey(ev.Conn, ev.Action, reply); err != nil {
		d.log.Errorf("passkey reply: %v", err)
	}
	return hog.Response{OK: ok}
}

func (d *Device) onSecretRequest(ev hog.SecretRequest) hog.Response {
	var (
		v  []byte
		ok bool
	)
	if ev.Key == nil {
		v, ok = d.store.At(ev.Type, ev.Index)
	} else {
		v, ok = d.store.Get(ev.Type, ev.Key)
	}
	return hog.Response{Value: v, OK: ok}
}

func (d *Device) onSecretStored(ev hog.SecretStored) hog.Response {
	if ev.Value == nil {
		if !d.store.Remove(ev.Type, ev.Key) {
			return hog.Response{OK: false}
		}
		d.store.Sync()
		return hog.Response{OK: true}
	}
	d.store.Put(ev.Type, ev.Key, ev.Value)
	d.store.Sync()
	return hog.Response{OK: true}
}

func (d *Device) onWritten(ev hog.CharacteristicWritten) hog.Response {
	if d.bindings == nil {
		d.log.Warnf("write event %d before registration, ignored", ev.Handle)
		return hog.Response{}
	}
	if d.kind == hog.Keyboard && ev.Handle == d.bindings.OutputReport {
		d.deliverOutput(ev.Handle)
		return hog.Response{}
	}
	d.log.Debugf("central wrote handle %d", ev.Handle)
	return hog.Response{}
}

// deliverOutput reads the freshly written output report and hands the
// LED state to the embedder.
func (d *Device) deliverOutput(handle uint16) {
	if d.outputFn == nil {
		return
	}
	value, err := d.transport.ReadCharacteristic(handle)
	if err != nil {
		d.log.Warnf("read output report: %v", err)
		return
	}
	leds, err := report.DecodeLEDs(value)
	if err != nil {
		d.log.Warnf("decode output report: %v", err)
		return
	}
	d.outputFn(leds)
}

func (d *Device) onReadRequest(ev hog.ReadRequest) hog.Response {
	if d.bindings == nil {
		return hog.Answered(hog.AttributeNotFound)
	}
	if d.conn == nil {
		return hog.Answered(hog.ReadNotPermitted)
	}
	status := d.policy.Authorize(security.OpRead, ev.Conn, d.conn.handle, d.conn.link)
	if status != hog.Success {
		d.log.Debugf("read of handle %d denied: %s", ev.Handle, status)
	}
	return hog.Answered(status)
}
