package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"pomoboy/internal/core/timekeeper"
	"pomoboy/internal/sound"
	"pomoboy/internal/storage"
	"pomoboy/internal/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const appName = "Pomoboy"

var errNotTerminal = errors.New("stdout is not an interactive terminal")

func main() {
	configPath := flag.String("config", "", "settings file (defaults to the user config directory)")
	mute := flag.Bool("mute", false, "start with sound cues muted")
	logPath := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	if err := run(*configPath, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "pomoboy: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, mute bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// The alternate screen owns the terminal, so diagnostics go to a file or nowhere.
	if logPath != "" {
		logFile, err := tea.LogToFile(logPath, "pomoboy")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings, err := storage.Store{AppName: appName, Path: configPath}.Load()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	keeper := timekeeper.New(settings.Config(), timekeeper.Options{})
	defer keeper.Close()

	var player sound.Player = sound.Silent{}
	if otoPlayer, err := sound.NewOtoPlayer(sound.Options{Volume: settings.Volume}); err != nil {
		log.Printf("sound: %v, continuing without audio", err)
	} else {
		player = otoPlayer
	}
	muted := mute || !settings.SoundEnabled
	dispatcher := sound.NewDispatcher(player)
	dispatcher.SetEnabled(!muted)

	go dispatcher.Run(context.Background(), keeper.Subscribe(16))

	model := tui.NewModel(keeper, keeper.Subscribe(64), tui.Options{
		Muted: muted,
		OnMute: func(muted bool) {
			dispatcher.SetEnabled(!muted)
		},
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
