package main

import (
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Hara602/usbwatch/internal/config"
	"github.com/Hara602/usbwatch/internal/core"
	"github.com/Hara602/usbwatch/internal/device"
	"github.com/Hara602/usbwatch/internal/monitor"
	"github.com/Hara602/usbwatch/internal/probe"
	"github.com/Hara602/usbwatch/pkg/logging"
)

var (
	flagInterval   int
	flagLogFile    string
	flagDebug      bool
	flagJSON       bool
	flagWatchFiles bool
	flagWatchRoot  string
	flagConfig     string
)

var rootCmd = &cobra.Command{
	Use:   "usbwatch",
	Short: "Monitor USB device connections and disconnections",
	Long:  "usbwatch polls for removable storage devices at a fixed interval and logs connect and disconnect transitions.",
	RunE:  run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	flags := rootCmd.Flags()
	flags.IntVarP(&flagInterval, "interval", "i", 5, "interval in seconds to check for USB device changes")
	flags.StringVarP(&flagLogFile, "log-file", "l", "usb_monitor.log", "path to the log file")
	flags.BoolVarP(&flagDebug, "debug", "d", false, "enable debug logging")
	flags.BoolVar(&flagJSON, "json", false, "write logs as JSON")
	flags.BoolVar(&flagWatchFiles, "watch-files", false, "also watch mounted removable media for file activity")
	flags.StringVar(&flagWatchRoot, "watch-root", "", "directory watched for file activity (default /media/<user>)")
	flags.StringVar(&flagConfig, "config", "", "path to a JSON config file")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}

	// Flags given on the command line win over the config file.
	if cmd.Flags().Changed("interval") {
		cfg.IntervalSeconds = flagInterval
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flagDebug
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONLogs = flagJSON
	}
	if cmd.Flags().Changed("watch-files") {
		cfg.WatchFiles = flagWatchFiles
	}
	if cmd.Flags().Changed("watch-root") {
		cfg.WatchRoot = flagWatchRoot
	}
	if cfg.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be positive, got %d", cfg.IntervalSeconds)
	}
	if cfg.WatchRoot == "" {
		cfg.WatchRoot = defaultWatchRoot()
	}

	if err := logging.InitLogger(cfg.LogFile, cfg.Debug, cfg.JSONLogs); err != nil {
		return err
	}
	defer logging.CloseLogger()

	log := logging.Sugar
	log.Info("Starting USB device monitoring...")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enum := device.NewEnumerator(probe.New(log), log)
	engine := core.NewEngine(log)
	engine.AddMonitor(monitor.NewDevicePoller(enum, time.Duration(cfg.IntervalSeconds)*time.Second, log))
	if cfg.WatchFiles {
		engine.AddMonitor(monitor.NewFSMonitor(cfg.WatchRoot, log))
	}

	engine.Run(ctx)
	log.Info("USB device monitoring stopped.")
	return nil
}

// defaultWatchRoot picks the directory where desktop environments mount
// removable media: /media/<user> when it exists, otherwise /media.
func defaultWatchRoot() string {
	if u, err := user.Current(); err == nil && u.Username != "root" {
		candidate := filepath.Join("/media", u.Username)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/media"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
