package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"game-wiki-overlay/internal/app"
	"game-wiki-overlay/internal/hotkey"
	"game-wiki-overlay/internal/ipc"
	"game-wiki-overlay/internal/popup"
	"game-wiki-overlay/internal/prompt"
	"game-wiki-overlay/internal/settingsui"
	"game-wiki-overlay/internal/storage"
	"game-wiki-overlay/internal/wm"
	"game-wiki-overlay/pkg/config"
	"game-wiki-overlay/pkg/global"
	"game-wiki-overlay/pkg/logger"
	"game-wiki-overlay/pkg/notify"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

func main() {
	configDir := flag.String("config", "", "override the configuration directory")
	debug := flag.Bool("debug", false, "enable debug logging")
	settings := flag.Bool("settings", false, "open the settings editor and exit")
	trigger := flag.Bool("trigger", false, "trigger the running daemon's hotkey pipeline and exit")
	reload := flag.Bool("reload", false, "ask the running daemon to reload the game catalog and exit")
	status := flag.Bool("status", false, "print the running daemon's status and exit")
	flag.Parse()

	// Client-mode flags talk to an already running daemon and need no
	// logger or config of their own.
	switch {
	case *trigger:
		runClientCommand("trigger")
		return
	case *reload:
		runClientCommand("reload")
		return
	case *status:
		runClientCommand("status")
		return
	}

	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Game Wiki Overlay",
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", *debug)

	shipped, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		log.Fatal("Failed to open embedded defaults", err)
	}

	var store *config.Store
	if *configDir != "" {
		store, err = config.NewStoreAt(*configDir, log, shipped)
	} else {
		store, err = config.NewStore(log, shipped)
	}
	if err != nil {
		log.Fatal("Failed to initialize configuration store", err)
	}

	global.InitGlobals(store, log)

	if *settings {
		log.Info("Opening settings editor")
		editor := settingsui.NewEditor(store, log)
		if err := editor.Run(); err != nil {
			log.Fatal("Settings editor error", err)
		}
		return
	}

	runDaemon(store, log)
}

func runDaemon(store *config.Store, log *logger.Logger) {
	probe, err := wm.NewProbe(log)
	if err != nil {
		log.Fatal("Failed to detect window environment", err)
	}

	var searchPrompt prompt.Prompt
	if rofi, err := prompt.NewRofiPrompt(log); err != nil {
		// Search profiles degrade to their base URL.
		log.Error("Search prompt unavailable", err)
		global.GetNotifier().Show("rofi not found, wiki search is disabled", notify.Error)
		searchPrompt = prompt.Disabled{}
	} else {
		searchPrompt = rofi
	}

	history, err := storage.Open(store.Dir(), log)
	if err != nil {
		// History is a convenience; the overlay works without it.
		log.Error("Failed to open lookup history, continuing without", err)
		history = nil
	} else if err := history.Cleanup(30 * 24 * time.Hour); err != nil {
		log.Error("Failed to prune lookup history", err)
	}

	factory, err := popup.NewXDGFactory(log)
	if err != nil {
		log.Fatal("No way to display wiki pages", err)
	}

	orchestrator := app.New(app.Deps{
		Log:       log,
		Notifier:  global.GetNotifier(),
		Store:     store,
		Probe:     probe,
		Registrar: hotkey.NewRegistrar(log),
		Prompt:    searchPrompt,
		Factory:   factory,
		History:   history,
	})

	server, err := ipc.NewServer(orchestrator, log)
	if err != nil {
		log.Error("Failed to start control socket, continuing without", err)
	} else {
		go server.Serve()
		defer server.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("Received signal, shutting down", "signal", sig.String())
		orchestrator.Quit()
	}()

	if err := orchestrator.Run(); err != nil {
		log.Fatal("Application error", err)
	}
}

func runClientCommand(command string) {
	resp, err := ipc.SendCommand(command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if resp.Status != "success" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", resp.Message)
		os.Exit(1)
	}
	fmt.Println(resp.Message)
	if resp.Detail != nil {
		detail, err := json.MarshalIndent(resp.Detail, "", "    ")
		if err == nil {
			fmt.Println(string(detail))
		}
	}
}
