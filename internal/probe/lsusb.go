//go:build !windows

package probe

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

const lsusbTimeout = 5 * time.Second

// LsusbProbe shells out to lsusb -v and scans its output for the device
// handle. Matching is substring containment of the handle (without the /dev/
// prefix) in an output line; when several entries match, the last one wins.
// That is a loose heuristic, but sysfs-exact matching is not available from
// lsusb output alone.
type LsusbProbe struct {
	log *zap.SugaredLogger

	// run executes the inventory command; replaced in tests.
	run func(ctx context.Context) ([]byte, error)
}

func newPlatformProbe(log *zap.SugaredLogger) Probe {
	if _, err := exec.LookPath("lsusb"); err != nil {
		log.Warnw("lsusb not found, vendor and product IDs will be unavailable", "error", err)
		return NoOpProbe{}
	}
	return &LsusbProbe{log: log, run: runLsusb}
}

func runLsusb(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, lsusbTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "lsusb", "-v").Output()
}

func (p *LsusbProbe) Lookup(ctx context.Context, device string) (Identity, bool) {
	out, err := p.run(ctx)
	if err != nil {
		p.log.Warnw("lsusb failed, vendor and product IDs may be unavailable", "error", err)
		return Identity{}, false
	}
	return parseLsusb(string(out), device)
}

// parseLsusb finds lines mentioning the device handle and pulls idVendor,
// idProduct and iSerial out of the lines that follow, stopping at the serial.
// The hex ids are taken from the 0x-prefixed token; the serial is the last
// field of its line.
func parseLsusb(output, device string) (Identity, bool) {
	handle := strings.TrimPrefix(device, "/dev/")
	if handle == "" {
		return Identity{}, false
	}
	lines := strings.Split(output, "\n")

	var id Identity
	found := false
	for i, line := range lines {
		if !strings.Contains(line, handle) {
			continue
		}

		var block Identity
		for _, detail := range lines[i:] {
			fields := strings.Fields(detail)
			if len(fields) < 2 {
				continue
			}
			switch fields[0] {
			case "idVendor":
				block.VendorID = strings.TrimPrefix(fields[1], "0x")
			case "idProduct":
				block.ProductID = strings.TrimPrefix(fields[1], "0x")
			case "iSerial":
				block.SerialNumber = fields[len(fields)-1]
			}
			if block.SerialNumber != "" {
				break
			}
		}
		id = block
		found = true
	}
	return id, found
}
