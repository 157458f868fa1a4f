package monitor

import "github.com/Hara602/usbwatch/pkg/event"

// MonitorInterface is implemented by every monitor. The engine does not care
// what mechanism is behind it.
type MonitorInterface interface {
	Start() (<-chan event.Event, error)
	Stop()
}
