package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsDark(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Dark, s.Get())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvVar, Light)

	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Light, s.Get())
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(Light))

	// A stored preference beats the env fallback.
	t.Setenv(EnvVar, Dark)

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, Light, reopened.Get())
}

func TestToggle(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	got, err := s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	got, err = s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}
