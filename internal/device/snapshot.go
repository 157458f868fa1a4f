// Package device models removable storage devices and enumerates the ones
// currently attached to the host.
package device

// Snapshot is one observation of one device at one poll tick. Device is the
// OS-level handle (e.g. /dev/sdb1, E:) and is the only field guaranteed to be
// present; it is the sole identity key used for presence comparison across
// ticks. Everything else is advisory and may be missing independently.
type Snapshot struct {
	Device     string
	Mountpoint string
	Fstype     string

	Total uint64
	Used  uint64
	Free  uint64

	// Best-effort identity metadata, frequently absent.
	VendorID     string
	ProductID    string
	SerialNumber string
}
