package device

import (
	"context"
	"time"
)

// AdvertiseFor advertises until a central connects, the duration elapses,
// the context is cancelled or the device is stopped. It returns true if a
// central connected. On timeout or cancellation while still advertising,
// advertising is stopped again.
func (d *Device) AdvertiseFor(ctx context.Context, du time.Duration) (bool, error) {
	d.mu.Lock()
	if d.state == Connected {
		d.mu.Unlock()
		return true, nil
	}
	if err := d.startAdvertising(); err != nil {
		d.mu.Unlock()
		return false, err
	}
	if d.state != Advertising {
		// Stopped devices no-op; there is nothing to wait for.
		d.mu.Unlock()
		return false, nil
	}
	connected := d.connectedCh
	stopped := d.stopCh
	d.mu.Unlock()

	t := time.NewTimer(du)
	defer t.Stop()

	select {
	case <-connected:
		return true, nil
	case <-stopped:
	case <-ctx.Done():
	case <-t.C:
	}

	// The connect event may have raced the timeout; StopAdvertising is
	// a no-op unless the device is still Advertising.
	if err := d.StopAdvertising(); err != nil {
		return false, err
	}
	return d.IsConnected(), ctx.Err()
}
