package event

import (
	"fmt"
	"time"

	"github.com/Hara602/usbwatch/internal/device"
)

// Kind identifies what a monitor observed.
type Kind string

const (
	DeviceConnected    Kind = "DEVICE_CONNECTED"
	DeviceDisconnected Kind = "DEVICE_DISCONNECTED"
	FileWrite          Kind = "FILE_WRITE"
	FileCreate         Kind = "FILE_CREATE"
	FileRemove         Kind = "FILE_REMOVE"
	FileRename         Kind = "FILE_RENAME"
)

// Event is the unit passed from monitors to the engine. Device events carry a
// full Snapshot for connects and an id-only Snapshot for disconnects (the
// device is no longer enumerable, so only its handle survives). File events
// carry the affected path instead.
type Event struct {
	Timestamp time.Time
	Kind      Kind
	Source    string
	Device    device.Snapshot
	Path      string
}

const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Message renders the log line for this event.
func (e Event) Message() string {
	switch e.Kind {
	case DeviceConnected:
		return fmt.Sprintf("USB Device Connected: Device: %s, Mountpoint: %s, Filesystem: %s, Vendor ID: %s, Product ID: %s, Serial Number: %s",
			orNA(e.Device.Device), orNA(e.Device.Mountpoint), orNA(e.Device.Fstype),
			orNA(e.Device.VendorID), orNA(e.Device.ProductID), orNA(e.Device.SerialNumber))
	case DeviceDisconnected:
		return fmt.Sprintf("USB Device Disconnected: Device: %s, Mountpoint: %s, Filesystem: %s, Vendor ID: %s, Product ID: %s, Serial Number: %s",
			orNA(e.Device.Device), notAvailable, notAvailable, notAvailable, notAvailable, notAvailable)
	case FileWrite, FileCreate, FileRemove, FileRename:
		return fmt.Sprintf("File activity on removable media: %s (%s)", e.Path, e.Kind)
	default:
		return string(e.Kind)
	}
}
