//go:build linux

package device

import (
	"os"
	"path/filepath"
	"strings"
)

// sysRemovable checks /sys/block/<disk>/removable for the partition's parent
// disk. Partition suffixes are trimmed first (sdb1 -> sdb).
func sysRemovable(devPath string) bool {
	name := filepath.Base(devPath)
	name = strings.TrimRight(name, "0123456789")
	data, err := os.ReadFile(filepath.Join("/sys/block", name, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}
