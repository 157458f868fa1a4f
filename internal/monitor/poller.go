package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Hara602/usbwatch/internal/device"
	"github.com/Hara602/usbwatch/pkg/event"
)

const (
	SourceDevice = "DEVICE_MONITOR"
	SourceFS     = "FS_MONITOR"
)

// Enumerator yields the current removable-device snapshots. Implementations
// never fail; an empty result is a valid observation.
type Enumerator interface {
	Enumerate(ctx context.Context) []device.Snapshot
}

// DevicePoller drives the enumerator at a fixed interval and emits
// connect/disconnect transitions on its event channel.
type DevicePoller struct {
	enum     Enumerator
	interval time.Duration
	log      *zap.SugaredLogger
	stopChan chan struct{}
}

func NewDevicePoller(enum Enumerator, interval time.Duration, log *zap.SugaredLogger) *DevicePoller {
	return &DevicePoller{
		enum:     enum,
		interval: interval,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

func (d *DevicePoller) Start() (<-chan event.Event, error) {
	eventChan := make(chan event.Event)

	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		defer close(eventChan)

		// The first tick runs immediately; the ticker paces the rest.
		state := NewState()
		for {
			if !d.tick(state, eventChan) {
				return
			}
			select {
			case <-d.stopChan:
				return
			case <-ticker.C:
			}
		}
	}()
	return eventChan, nil
}

// tick runs one enumeration and pushes the resulting events. Returns false
// when the poller was stopped mid-emission.
func (d *DevicePoller) tick(state *State, out chan<- event.Event) bool {
	current := d.enum.Enumerate(context.Background())
	d.log.Debugw("poll tick", "devices", len(current))

	for _, evt := range state.Observe(time.Now(), current) {
		select {
		case out <- evt:
		case <-d.stopChan:
			return false
		}
	}
	return true
}

func (d *DevicePoller) Stop() {
	close(d.stopChan)
}
