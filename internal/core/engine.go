package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Hara602/usbwatch/internal/monitor"
	"github.com/Hara602/usbwatch/pkg/event"
)

// Engine starts the configured monitors, fans their event channels into one
// stream, and writes each event to the log.
type Engine struct {
	monitors []monitor.MonitorInterface
	log      *zap.SugaredLogger
}

func NewEngine(log *zap.SugaredLogger) *Engine {
	return &Engine{log: log}
}

func (e *Engine) AddMonitor(m monitor.MonitorInterface) {
	e.monitors = append(e.monitors, m)
}

// Run blocks until ctx is cancelled or every monitor channel has closed. A
// channel closing without Stop having been called means a monitor died; that
// is logged as an error and ends the run.
func (e *Engine) Run(ctx context.Context) {
	aggregator := make(chan event.Event)
	var wg sync.WaitGroup

	started := 0
	for _, m := range e.monitors {
		ch, err := m.Start()
		if err != nil {
			e.log.Errorw("failed to start monitor", "error", err)
			continue
		}
		started++

		wg.Add(1)
		go func(c <-chan event.Event) {
			defer wg.Done()
			for evt := range c {
				aggregator <- evt
			}
		}(ch)
	}
	if started == 0 {
		e.log.Error("no monitors running")
		return
	}

	go func() {
		wg.Wait()
		close(aggregator)
	}()

	for {
		select {
		case <-ctx.Done():
			e.log.Info("Stopping USB device monitoring...")
			for _, m := range e.monitors {
				m.Stop()
			}
			// Drain so the forwarding goroutines can finish.
			for evt := range aggregator {
				e.handle(evt)
			}
			return
		case evt, ok := <-aggregator:
			if !ok {
				e.log.Error("all monitors exited unexpectedly, shutting down")
				return
			}
			e.handle(evt)
		}
	}
}

func (e *Engine) handle(evt event.Event) {
	switch evt.Kind {
	case event.DeviceConnected:
		e.log.Info(evt.Message())
		e.log.Debugw("device detail",
			"device", evt.Device.Device,
			"mountpoint", evt.Device.Mountpoint,
			"fstype", evt.Device.Fstype,
			"total", evt.Device.Total,
			"used", evt.Device.Used,
			"free", evt.Device.Free,
		)
	case event.DeviceDisconnected:
		e.log.Info(evt.Message())
	default:
		e.log.Debugw(evt.Message(), "source", evt.Source, "path", evt.Path)
	}
}
