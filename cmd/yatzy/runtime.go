package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-yatzy/internal/config"
	"github.com/vovakirdan/tui-yatzy/internal/core"
	"github.com/vovakirdan/tui-yatzy/internal/platform/tui"
	"github.com/vovakirdan/tui-yatzy/internal/storage"
)

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadRules loads the rules file or exits.
func loadRules() config.Rules {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return rules
}

// openStore opens the results database. Games run without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// openEventLog opens the --log file. The returned close func is never nil.
func openEventLog() (*log.Logger, func()) {
	if flagLogPath == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil, func() {}
	}
	return tui.NewEventLogger(f), func() { f.Close() }
}
