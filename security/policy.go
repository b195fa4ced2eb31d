// Package security evaluates every boundary-crossing characteristic
// access against the pairing state of the link, and answers the passkey
// actions a stack raises during pairing.
package security

import (
	hog "github.com/ble-hog/hog"
)

// DefaultPasskey is the passkey used when none is configured. Override it
// with Config.Passkey for anything beyond bench testing.
const DefaultPasskey uint32 = 1234

// DefaultMinKeySize is the smallest accepted encryption key size in
// bytes. Links negotiated below it count as insufficiently encrypted.
const DefaultMinKeySize = 16

// Config is the pairing policy of the device.
type Config struct {
	// Bonding requires centrals to bond; unbonded access is denied
	// with insufficient authorization.
	Bonding bool
	// LESecure requires an encrypted link with an acceptable key size.
	LESecure bool
	// MITM requests man-in-the-middle protection during pairing.
	MITM bool
	// IOCap determines the pairing procedure. Anything beyond
	// no-input-no-output implies the link must authenticate.
	IOCap hog.IOCapability
	// Passkey is shown or compared during authenticated pairing.
	Passkey uint32
	// MinKeySize overrides DefaultMinKeySize when non-zero.
	MinKeySize int
}

// Defaults is the policy of the most defensive profile variant: bonding
// and LE secure connections on, pairing without authentication.
func Defaults() Config {
	return Config{
		Bonding:  true,
		LESecure: true,
		MITM:     true,
		IOCap:    hog.IOCapNoInputOutput,
		Passkey:  DefaultPasskey,
	}
}

// Link is the security state of the active connection, as last reported
// by the transport's encryption update.
type Link struct {
	Encrypted     bool
	Authenticated bool
	Bonded        bool
	KeySize       int
}

// Op is the access direction of a characteristic request.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

// PasskeyFunc supplies a passkey (for entry actions) or a yes/no (for
// numeric comparison) from whatever user interaction the embedder has.
type PasskeyFunc func() (passkey uint32, ok bool)

// Policy is the evaluated pairing policy.
type Policy struct {
	cfg       Config
	passkeyFn PasskeyFunc
	log       hog.Logger
}

// New returns a policy for the given configuration.
func New(cfg Config) *Policy {
	if cfg.Passkey == 0 {
		cfg.Passkey = DefaultPasskey
	}
	if cfg.MinKeySize == 0 {
		cfg.MinKeySize = DefaultMinKeySize
	}
	return &Policy{
		cfg: cfg,
		log: hog.GetLogger().ChildLogger(map[string]interface{}{"pkg": "security"}),
	}
}

// Config returns the policy configuration.
func (p *Policy) Config() Config { return p.cfg }

// SetPasskeyFunc installs the pairing interaction callback. Without one,
// passkey entry and numeric comparison fail closed.
func (p *Policy) SetPasskeyFunc(fn PasskeyFunc) { p.passkeyFn = fn }

// Authorize decides a characteristic read or write request. The checks
// run in a fixed order: connection identity, bonding, authentication,
// encryption; the first violated requirement names the status.
func (p *Policy) Authorize(op Op, reqConn, activeConn uint16, link Link) hog.AttStatus {
	if reqConn != activeConn {
		if op == OpWrite {
			return hog.WriteNotPermitted
		}
		return hog.ReadNotPermitted
	}
	if p.cfg.Bonding && !link.Bonded {
		return hog.InsufficientAuthorization
	}
	if p.requiresAuthentication() && !link.Authenticated {
		return hog.InsufficientAuthentication
	}
	if p.cfg.LESecure && (!link.Encrypted || link.KeySize < p.cfg.MinKeySize) {
		return hog.InsufficientEncryption
	}
	return hog.Success
}

// requiresAuthentication reports whether the configured IO capability
// implies authenticated pairing.
func (p *Policy) requiresAuthentication() bool {
	return p.cfg.IOCap != hog.IOCapNoInputOutput
}

// React answers a passkey action. For display actions the configured
// passkey is returned; entry and comparison actions consult the passkey
// callback and abort pairing when it is missing.
func (p *Policy) React(action int) (reply uint32, ok bool) {
	switch action {
	case hog.PasskeyDisplay:
		return p.cfg.Passkey, true
	case hog.PasskeyInput:
		if p.passkeyFn == nil {
			p.log.Warn("passkey entry requested without a passkey callback, aborting pairing")
			return 0, false
		}
		return p.passkeyFn()
	case hog.PasskeyNumericComparison:
		if p.passkeyFn == nil {
			p.log.Warn("numeric comparison requested without a passkey callback, rejecting")
			return 0, false
		}
		_, accept := p.passkeyFn()
		if !accept {
			return 0, false
		}
		return 1, true
	default:
		p.log.Warnf("unknown passkey action %d", action)
		return 0, false
	}
}
