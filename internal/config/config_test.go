package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IntervalSeconds != 5 {
		t.Errorf("IntervalSeconds = %d, want 5", cfg.IntervalSeconds)
	}
	if cfg.LogFile != "usb_monitor.log" {
		t.Errorf("LogFile = %q, want usb_monitor.log", cfg.LogFile)
	}
	if cfg.Debug || cfg.JSONLogs || cfg.WatchFiles {
		t.Errorf("boolean options should default to false: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"interval_seconds": 30, "log_file": "/var/log/usbwatch.log", "debug": true}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.IntervalSeconds != 30 {
		t.Errorf("IntervalSeconds = %d, want 30", cfg.IntervalSeconds)
	}
	if cfg.LogFile != "/var/log/usbwatch.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	// Unset fields keep their defaults.
	if cfg.WatchFiles {
		t.Error("WatchFiles should keep its default")
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"interval_seconds": -1}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.IntervalSeconds != 5 {
		t.Errorf("IntervalSeconds = %d, want default 5", cfg.IntervalSeconds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
