package device

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/Hara602/usbwatch/internal/probe"
)

// Enumerator lists the removable storage devices currently attached to the
// host. Failures never escape Enumerate: a device whose usage query fails is
// dropped from the tick, a device whose enrichment fails is kept without
// identity metadata, and a failed partition listing yields an empty result.
type Enumerator struct {
	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	probe      probe.Probe
	log        *zap.SugaredLogger
}

func NewEnumerator(p probe.Probe, log *zap.SugaredLogger) *Enumerator {
	return &Enumerator{
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
		probe:      p,
		log:        log,
	}
}

// Enumerate returns a snapshot of every removable device with a known
// filesystem, in OS enumeration order. A removable entry with no filesystem
// type (an empty card reader slot, say) is excluded.
func (e *Enumerator) Enumerate(ctx context.Context) []Snapshot {
	parts, err := e.partitions(ctx, false)
	if err != nil {
		e.log.Errorw("listing disk partitions failed", "error", err)
		return nil
	}

	var devices []Snapshot
	for _, p := range parts {
		if p.Fstype == "" || !removable(p) {
			continue
		}

		du, err := e.usage(ctx, p.Mountpoint)
		if err != nil {
			// Permission problems and devices yanked mid-enumeration land
			// here. Partial capacity data is not reported.
			e.log.Warnw("disk usage unavailable, skipping device",
				"device", p.Device, "mountpoint", p.Mountpoint, "error", err)
			continue
		}

		snap := Snapshot{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Total:      du.Total,
			Used:       du.Used,
			Free:       du.Free,
		}
		if id, ok := e.probe.Lookup(ctx, p.Device); ok {
			snap.VendorID = id.VendorID
			snap.ProductID = id.ProductID
			snap.SerialNumber = id.SerialNumber
		}
		devices = append(devices, snap)
	}
	return devices
}
