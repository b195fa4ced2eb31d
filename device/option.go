package device

import (
	"time"

	hog "github.com/ble-hog/hog"
	"github.com/ble-hog/hog/profile"
	"github.com/ble-hog/hog/report"
	"github.com/ble-hog/hog/secrets"
	"github.com/ble-hog/hog/security"
)

// config gathers construction inputs that are consumed by New rather
// than stored on the device.
type config struct {
	info      profile.Info
	security  security.Config
	passkeyFn security.PasskeyFunc
}

// An Option configures a device during construction.
type Option func(*Device, *config)

// WithName sets the GAP device name, which is also advertised.
func WithName(name string) Option {
	return func(d *Device, _ *config) { d.name = name }
}

// WithInfo sets the Device Information service content.
func WithInfo(info profile.Info) Option {
	return func(_ *Device, c *config) { c.info = info }
}

// WithBattery sets the initial battery level percentage.
func WithBattery(level int) Option {
	return func(d *Device, _ *config) { d.battery = clampBattery(level) }
}

// WithSecurity replaces the default pairing policy configuration.
func WithSecurity(cfg security.Config) Option {
	return func(_ *Device, c *config) { c.security = cfg }
}

// WithPasskey sets the passkey used during authenticated pairing.
func WithPasskey(passkey uint32) Option {
	return func(_ *Device, c *config) { c.security.Passkey = passkey }
}

// WithIOCapability sets the pairing input/output capability.
func WithIOCapability(cap hog.IOCapability) Option {
	return func(_ *Device, c *config) { c.security.IOCap = cap }
}

// WithBonding toggles the bonding requirement.
func WithBonding(bond bool) Option {
	return func(_ *Device, c *config) { c.security.Bonding = bond }
}

// WithLESecure toggles the secure-connection requirement, and with it
// man-in-the-middle protection.
func WithLESecure(secure bool) Option {
	return func(_ *Device, c *config) {
		c.security.LESecure = secure
		c.security.MITM = secure
	}
}

// WithPasskeyFunc installs the pairing interaction callback.
func WithPasskeyFunc(fn security.PasskeyFunc) Option {
	return func(_ *Device, c *config) { c.passkeyFn = fn }
}

// WithSecrets injects the bonding secret store. Without it the device
// keeps secrets in memory only.
func WithSecrets(s *secrets.Store) Option {
	return func(d *Device, _ *config) { d.store = s }
}

// WithLogger replaces the package logger for this device.
func WithLogger(l hog.Logger) Option {
	return func(d *Device, _ *config) { d.log = l }
}

// WithAdvertisingInterval overrides the advertising interval.
func WithAdvertisingInterval(iv time.Duration) Option {
	return func(d *Device, _ *config) { d.advInterval = iv }
}

// WithStateHandler installs a callback fired synchronously on every
// state transition, e.g. for reflecting status on an indicator light.
// It must not block or re-enter the device.
func WithStateHandler(fn func(State)) Option {
	return func(d *Device, _ *config) { d.stateFn = fn }
}

// WithOutputHandler installs the callback receiving host-originated
// keyboard LED reports. Only meaningful for Keyboard devices.
func WithOutputHandler(fn func(report.LEDs)) Option {
	return func(d *Device, _ *config) { d.outputFn = fn }
}
