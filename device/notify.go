package device

import (
	"github.com/pkg/errors"

	"github.com/ble-hog/hog/report"
)

// NotifyInput encodes the input state and notifies the connected central
// through the input report characteristic. Without a connection it is a
// no-op: input sampled between connections is simply not delivered.
func (d *Device) NotifyInput(r report.Report) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Connected {
		d.log.Debug("input report dropped, no central connected")
		return nil
	}
	state := r.Encode()
	if err := d.transport.Notify(d.conn.handle, d.bindings.InputReport, state); err != nil {
		return errors.Wrap(err, "notify input report")
	}
	return nil
}

// BatteryLevel returns the current battery level percentage.
func (d *Device) BatteryLevel() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int(d.battery)
}

// SetBatteryLevel updates the battery level, clamped to 0..100. The new
// value is written to the characteristic if the device is running.
func (d *Device) SetBatteryLevel(level int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.battery = clampBattery(level)
	if d.state == Stopped || d.bindings == nil {
		return
	}
	if err := d.transport.WriteCharacteristic(d.bindings.BatteryLevel, []byte{d.battery}); err != nil {
		d.log.Warnf("write battery level: %v", err)
	}
}

// NotifyBatteryLevel notifies the connected central of the battery
// level. A no-op without a connection.
func (d *Device) NotifyBatteryLevel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Connected {
		return nil
	}
	if err := d.transport.Notify(d.conn.handle, d.bindings.BatteryLevel, []byte{d.battery}); err != nil {
		return errors.Wrap(err, "notify battery level")
	}
	return nil
}

func clampBattery(level int) byte {
	if level > 100 {
		return 100
	}
	if level < 0 {
		return 0
	}
	return byte(level)
}
