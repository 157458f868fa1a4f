// Package probe resolves best-effort vendor/product/serial metadata for a
// block device through whatever inventory source the platform offers.
package probe

import (
	"context"

	"go.uber.org/zap"
)

// Identity is the enrichment payload. Any field may be empty.
type Identity struct {
	VendorID     string
	ProductID    string
	SerialNumber string
}

// Probe looks up identity metadata for a device handle. Lookup never returns
// an error: a probe that fails logs its own warning and reports a miss.
type Probe interface {
	Lookup(ctx context.Context, device string) (Identity, bool)
}

// New selects the probe for the current platform, once at startup.
func New(log *zap.SugaredLogger) Probe {
	return newPlatformProbe(log)
}

// NoOpProbe stands in when the platform has no usable inventory source.
type NoOpProbe struct{}

func (NoOpProbe) Lookup(context.Context, string) (Identity, bool) {
	return Identity{}, false
}
