package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/config"
	"filegrip/internal/eventbus"
	"filegrip/internal/fileops"
	"filegrip/internal/listing"
	"filegrip/internal/ui"
	"filegrip/internal/watch"
)

func main() {
	// Parse command line arguments
	var targetDir string
	flag.StringVar(&targetDir, "dir", "", "Directory to open")
	flag.StringVar(&targetDir, "d", "", "Directory to open (shorthand)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("filegrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// A directory given on the command line wins over the saved one
	if targetDir != "" {
		absDir, err := filepath.Abs(targetDir)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		cfg.StartDir = absDir
	}
	if info, err := os.Stat(cfg.StartDir); err != nil || !info.IsDir() {
		fmt.Printf("Not a directory: %s\n", cfg.StartDir)
		os.Exit(1)
	}

	// Initialize services
	lister := listing.NewService(bus)
	ops := fileops.NewService(bus)
	watcher := watch.New(bus)
	defer watcher.Stop()

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, configSvc, lister, ops, watcher)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventDirLoaded,
		eventbus.EventDirChanged,
		eventbus.EventError,
		eventbus.EventOpStarted,
		eventbus.EventOpCompleted,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI in %s...", cfg.StartDir)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
