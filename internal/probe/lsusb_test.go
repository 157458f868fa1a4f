//go:build !windows

package probe

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

const kingstonOutput = `
Bus 001 Device 004: ID 0951:1666 Kingston Technology DataTraveler sdb1
Device Descriptor:
  bLength                18
  idVendor           0x0951 Kingston Technology
  idProduct          0x1666 DataTraveler 100 G3
  iManufacturer           1 Kingston
  iSerial                 3 60A44C413BFC
`

func TestParseLsusb(t *testing.T) {
	id, ok := parseLsusb(kingstonOutput, "/dev/sdb1")
	if !ok {
		t.Fatal("expected a match")
	}
	if id.VendorID != "0951" {
		t.Errorf("VendorID = %q, want 0951", id.VendorID)
	}
	if id.ProductID != "1666" {
		t.Errorf("ProductID = %q, want 1666", id.ProductID)
	}
	if id.SerialNumber != "60A44C413BFC" {
		t.Errorf("SerialNumber = %q, want 60A44C413BFC", id.SerialNumber)
	}
}

func TestParseLsusbNoMatch(t *testing.T) {
	if _, ok := parseLsusb(kingstonOutput, "/dev/sdz9"); ok {
		t.Error("expected a miss for an unknown handle")
	}
}

func TestParseLsusbLastMatchWins(t *testing.T) {
	output := `
Bus 001 Device 004: ID 0951:1666 Kingston sdb1
  idVendor           0x0951 Kingston Technology
  idProduct          0x1666 DataTraveler
  iSerial                 3 AAAA
Bus 001 Device 005: ID 0781:5583 SanDisk sdb1
  idVendor           0x0781 SanDisk Corp.
  idProduct          0x5583 Ultra Fit
  iSerial                 3 BBBB
`
	id, ok := parseLsusb(output, "/dev/sdb1")
	if !ok {
		t.Fatal("expected a match")
	}
	if id.VendorID != "0781" || id.SerialNumber != "BBBB" {
		t.Errorf("got %+v, want the later entry (0781/BBBB)", id)
	}
}

func TestParseLsusbMissingSerial(t *testing.T) {
	output := `
Bus 001 Device 004: ID 0951:1666 Kingston sdb1
  idVendor           0x0951 Kingston Technology
  idProduct          0x1666 DataTraveler
`
	id, ok := parseLsusb(output, "/dev/sdb1")
	if !ok {
		t.Fatal("expected a match")
	}
	if id.VendorID != "0951" || id.ProductID != "1666" {
		t.Errorf("ids = %q/%q, want 0951/1666", id.VendorID, id.ProductID)
	}
	if id.SerialNumber != "" {
		t.Errorf("SerialNumber = %q, want empty", id.SerialNumber)
	}
}

func TestLsusbProbeCommandFailureIsAMiss(t *testing.T) {
	p := &LsusbProbe{
		log: zap.NewNop().Sugar(),
		run: func(context.Context) ([]byte, error) {
			return nil, errors.New("exec: lsusb: command not found")
		},
	}
	if _, ok := p.Lookup(context.Background(), "/dev/sdb1"); ok {
		t.Error("command failure must report a miss, not an error")
	}
}

func TestLsusbProbeLookupParsesCommandOutput(t *testing.T) {
	p := &LsusbProbe{
		log: zap.NewNop().Sugar(),
		run: func(context.Context) ([]byte, error) {
			return []byte(kingstonOutput), nil
		},
	}
	id, ok := p.Lookup(context.Background(), "/dev/sdb1")
	if !ok || id.VendorID != "0951" {
		t.Errorf("Lookup = %+v, %v; want vendor 0951, true", id, ok)
	}
}
