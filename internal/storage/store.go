package storage

import "pomoboy/internal/ui/preferences"

// Store reads and writes settings at an explicit path, or at the per-user
// location for AppName when Path is empty.
type Store struct {
	AppName string
	Path    string
}

// Load returns the stored settings. On error the returned settings are the
// defaults and remain usable.
func (store Store) Load() (preferences.Settings, error) {
	if store.Path != "" {
		return LoadSettingsFile(store.Path)
	}
	return LoadSettings(store.AppName)
}

// Save writes settings to the store's location.
func (store Store) Save(settings preferences.Settings) error {
	if store.Path != "" {
		return SaveSettingsFile(store.Path, settings)
	}
	return SaveSettings(store.AppName, settings)
}
