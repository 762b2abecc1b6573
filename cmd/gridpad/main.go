// Package main is the entry point for the gridpad macropad core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/gridpad/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, showVersion := parseFlags()

	if showVersion {
		fmt.Printf("gridpad %s (%s)\n", version, commit)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to TOML configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to TOML configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Headless, "headless", false, "Run the demonstration script instead of the simulator")
	flag.StringVar(&opts.SnapshotDir, "snapshot-dir", "", "Directory for OLED snapshots after a headless run")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridpad - 4x4 macropad input-to-feedback core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridpad [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridpad                       Run the terminal simulator\n")
		fmt.Fprintf(os.Stderr, "  gridpad -c gridpad.toml       Run with a custom keymap and colors\n")
		fmt.Fprintf(os.Stderr, "  gridpad -headless             Run the demonstration cycle and exit\n")
	}

	flag.Parse()
	return opts, showVersion
}
