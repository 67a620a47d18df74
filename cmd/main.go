package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"pomoboy/internal/core/timekeeper"
	"pomoboy/internal/platform"
	"pomoboy/internal/sound"
	"pomoboy/internal/storage"
	"pomoboy/internal/ui/animation"
	"pomoboy/internal/ui/preferences"
	"pomoboy/internal/ui/screen"
	"pomoboy/internal/ui/tray"
	"pomoboy/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Pomoboy"

func main() {
	configPath := flag.String("config", "", "settings file (defaults to the user config directory)")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		switch {
		case errors.Is(err, platform.ErrAlreadyRunning):
			log.Printf("%s is already running, activated the open window", appName)
		case errors.Is(err, platform.ErrPortInUse):
			log.Printf("single instance: %v; another program may be using the port", err)
		default:
			log.Printf("single instance: %v", err)
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	store := storage.Store{AppName: appName, Path: *configPath}
	settings, err := store.Load()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}

	keeper := timekeeper.New(settings.Config(), timekeeper.Options{})
	defer keeper.Close()

	var player sound.Player = sound.Silent{}
	otoPlayer, err := sound.NewOtoPlayer(sound.Options{Volume: settings.Volume})
	if err != nil {
		log.Printf("sound: %v, continuing without audio", err)
	} else {
		player = otoPlayer
	}
	dispatcher := sound.NewDispatcher(player)
	dispatcher.SetEnabled(settings.SoundEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx, keeper.Subscribe(16))

	fyneApp := app.NewWithID("com.pomoboy.app")
	fyneApp.SetIcon(resources.RunStateIcon(true))

	mainWindow := fyneApp.NewWindow(keeper.Snapshot().Title())
	palette := screen.DefaultPalette()
	display := screen.New(palette)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) error {
		if err := keeper.ApplyConfig(updated.Config()); err != nil {
			return err
		}
		if err := store.Save(updated); err != nil {
			log.Printf("settings: %v", err)
			return err
		}
		if otoPlayer != nil {
			otoPlayer.SetVolume(updated.Volume)
		}
		dispatcher.SetEnabled(updated.SoundEnabled)
		return nil
	})

	showMain := func() {
		mainWindow.Show()
		mainWindow.RequestFocus()
	}
	guard.SetOnActivate(func() {
		fyne.Do(showMain)
	})

	controls := screen.Callbacks{
		OnPrevious: keeper.SkipPrevious,
		OnNext:     keeper.SkipNext,
		OnToggle:   keeper.ToggleRunning,
		OnReset:    keeper.Reset,
		OnSettings: prefsWindow.Show,
	}
	caseBackground := canvas.NewRectangle(palette.Case)
	caseBackground.CornerRadius = 16
	mainWindow.SetContent(container.NewStack(
		caseBackground,
		container.NewPadded(container.NewBorder(nil, screen.NewControls(controls), nil, nil, display.Content())),
	))
	screen.BindKeys(mainWindow.Canvas(), controls)
	mainWindow.Resize(fyne.NewSize(360, 420))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        showMain,
			OnToggle:      keeper.ToggleRunning,
			OnReset:       keeper.Reset,
			OnNextMode:    keeper.SkipNext,
			OnPrevMode:    keeper.SkipPrevious,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.RunStateIcon(false))
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	iconRunning := false
	render := func(state timekeeper.State) {
		display.Render(state)
		mainWindow.SetTitle(state.Title())
		if trayManager == nil {
			return
		}
		trayManager.Update(state)
		if desktopApp, ok := fyneApp.(desktop.App); ok && state.Running != iconRunning {
			iconRunning = state.Running
			desktopApp.SetSystemTrayIcon(resources.RunStateIcon(iconRunning))
		}
	}
	render(keeper.Snapshot())

	pulse := animation.New(animation.DefaultConfig(), func(opacity float64) {
		fyne.Do(func() {
			display.SetStatusOpacity(opacity)
		})
	})
	events := keeper.Subscribe(32)
	go func() {
		for event := range events {
			if event.State.Running {
				pulse.Start(ctx)
			} else {
				pulse.Stop()
			}
			state := event.State
			fyne.Do(func() {
				render(state)
			})
		}
		pulse.Stop()
	}()

	mainWindow.Show()
	fyneApp.Run()
}
