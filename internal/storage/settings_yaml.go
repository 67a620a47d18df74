package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomoboy/internal/platform"
	"pomoboy/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PomodoroMinutes    int      `yaml:"pomodoro_minutes"`
	ShortBreakMinutes  int      `yaml:"short_break_minutes"`
	LongBreakMinutes   int      `yaml:"long_break_minutes"`
	LongBreakInterval  int      `yaml:"long_break_interval"`
	AutoStartBreaks    bool     `yaml:"auto_start_breaks"`
	AutoStartPomodoros bool     `yaml:"auto_start_pomodoros"`
	SoundEnabled       *bool    `yaml:"sound_enabled,omitempty"`
	Volume             *float64 `yaml:"volume,omitempty"`
}

// LoadSettings reads user preferences from the app's YAML file.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from path.
// Missing or non-positive fields keep their default values.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the app's YAML file.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	soundEnabled := settings.SoundEnabled
	volume := settings.Volume
	fileData := yamlSettings{
		PomodoroMinutes:    settings.PomodoroMinutes,
		ShortBreakMinutes:  settings.ShortBreakMinutes,
		LongBreakMinutes:   settings.LongBreakMinutes,
		LongBreakInterval:  settings.LongBreakInterval,
		AutoStartBreaks:    settings.AutoStartBreaks,
		AutoStartPomodoros: settings.AutoStartPomodoros,
		SoundEnabled:       &soundEnabled,
		Volume:             &volume,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the location of the settings file for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.PomodoroMinutes > 0 {
		settings.PomodoroMinutes = fileData.PomodoroMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.LongBreakInterval > 0 {
		settings.LongBreakInterval = fileData.LongBreakInterval
	}

	if fileData.Volume != nil && *fileData.Volume >= 0 && *fileData.Volume <= 1 {
		settings.Volume = *fileData.Volume
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}

	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartPomodoros = fileData.AutoStartPomodoros
}
