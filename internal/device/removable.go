package device

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// removable reports whether a partition belongs to removable media. Windows
// exposes a removable flag through the mount options; the Linux mount table
// carries no such flag, so the block device's sysfs entry is consulted there.
func removable(p disk.PartitionStat) bool {
	for _, opt := range p.Opts {
		if strings.EqualFold(opt, "removable") {
			return true
		}
	}
	return sysRemovable(p.Device)
}
