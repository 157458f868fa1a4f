package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config carries the runtime options. Values come from an optional JSON file,
// overridden by command-line flags.
type Config struct {
	IntervalSeconds int    `json:"interval_seconds"`
	LogFile         string `json:"log_file"`
	Debug           bool   `json:"debug"`
	JSONLogs        bool   `json:"json_logs"`
	WatchFiles      bool   `json:"watch_files"`
	WatchRoot       string `json:"watch_root"`
}

func Default() Config {
	return Config{
		IntervalSeconds: 5,
		LogFile:         "usb_monitor.log",
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = Default().IntervalSeconds
	}
	return cfg, nil
}
