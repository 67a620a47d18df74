package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsAreEmbedded(t *testing.T) {
	for _, name := range []string{IconRunning, IconIdle} {
		resource, err := Icon(name)
		require.NoError(t, err)
		assert.Equal(t, name, resource.Name())
		assert.True(t, strings.Contains(string(resource.Content()), "<svg"))
	}
}

func TestIconIsCached(t *testing.T) {
	first := MustIcon(IconRunning)
	second := MustIcon(IconRunning)
	assert.Same(t, first, second)
}

func TestRunStateIcon(t *testing.T) {
	assert.Equal(t, IconRunning, RunStateIcon(true).Name())
	assert.Equal(t, IconIdle, RunStateIcon(false).Name())
	assert.NotEqual(t, RunStateIcon(true).Content(), RunStateIcon(false).Content())
}

func TestMissingIcon(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}
