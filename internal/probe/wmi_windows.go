//go:build windows

package probe

import (
	"context"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"go.uber.org/zap"
)

// win32DiskDrive is the subset of the WMI class consumed here. Pointer fields
// because any of them can be NULL.
type win32DiskDrive struct {
	Name         *string
	Model        *string
	Manufacturer *string
	SerialNumber *string
}

// WMIProbe matches the device handle against Win32_DiskDrive names. As with
// the other probes, several drives may match and the last one wins.
type WMIProbe struct {
	log   *zap.SugaredLogger
	query func(q string, dst interface{}) error
}

func newPlatformProbe(log *zap.SugaredLogger) Probe {
	return &WMIProbe{
		log: log,
		query: func(q string, dst interface{}) error {
			return wmi.Query(q, dst)
		},
	}
}

func (p *WMIProbe) Lookup(_ context.Context, device string) (Identity, bool) {
	var drives []win32DiskDrive
	q := "SELECT Name, Model, Manufacturer, SerialNumber FROM Win32_DiskDrive"
	if err := p.query(q, &drives); err != nil {
		p.log.Warnw("WMI disk drive query failed, vendor and product IDs may be unavailable", "error", err)
		return Identity{}, false
	}

	var id Identity
	found := false
	for _, d := range drives {
		if d.Name == nil || !strings.Contains(*d.Name, device) {
			continue
		}
		id = Identity{
			VendorID:     deref(d.Manufacturer),
			ProductID:    deref(d.Model),
			SerialNumber: deref(d.SerialNumber),
		}
		found = true
	}
	return id, found
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
