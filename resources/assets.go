// Package resources serves the embedded application icons.
package resources

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"fyne.io/fyne/v2"
)

// Icon file names under logo/.
const (
	IconRunning = "pomoboy_active.svg"
	IconIdle    = "pomoboy_paused.svg"
)

//go:embed logo/*.svg
var logoFS embed.FS

var icons sync.Map

// Icon returns the embedded SVG fileName as a fyne resource. Resources are
// built once and shared.
func Icon(fileName string) (fyne.Resource, error) {
	if cached, ok := icons.Load(fileName); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := logoFS.ReadFile(path.Join("logo", fileName))
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", fileName, err)
	}

	resource, _ := icons.LoadOrStore(fileName, fyne.NewStaticResource(fileName, data))
	return resource.(fyne.Resource), nil
}

// MustIcon returns an embedded icon or panics.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// RunStateIcon returns the tray icon for a running or idle countdown.
func RunStateIcon(running bool) fyne.Resource {
	if running {
		return MustIcon(IconRunning)
	}
	return MustIcon(IconIdle)
}
