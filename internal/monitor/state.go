package monitor

import (
	"time"

	"github.com/Hara602/usbwatch/internal/device"
	"github.com/Hara602/usbwatch/pkg/event"
)

// State holds the set of device ids seen on the previous tick. It starts
// empty, so devices already attached when monitoring begins are reported as
// connected on the first tick.
type State struct {
	previous map[string]struct{}
}

func NewState() *State {
	return &State{previous: make(map[string]struct{})}
}

// Observe diffs the current enumeration against the previous tick and returns
// this tick's events: connects first, in enumeration order, then disconnects.
// Disconnect events carry an id-only snapshot since the device is no longer
// enumerable. The previous set is replaced wholesale, never merged.
func (s *State) Observe(now time.Time, current []device.Snapshot) []event.Event {
	currentIDs := make(map[string]struct{}, len(current))
	for _, d := range current {
		currentIDs[d.Device] = struct{}{}
	}

	var events []event.Event
	for _, d := range current {
		if _, seen := s.previous[d.Device]; !seen {
			events = append(events, event.Event{
				Timestamp: now,
				Kind:      event.DeviceConnected,
				Source:    SourceDevice,
				Device:    d,
			})
		}
	}
	for id := range s.previous {
		if _, still := currentIDs[id]; !still {
			events = append(events, event.Event{
				Timestamp: now,
				Kind:      event.DeviceDisconnected,
				Source:    SourceDevice,
				Device:    device.Snapshot{Device: id},
			})
		}
	}

	s.previous = currentIDs
	return events
}
