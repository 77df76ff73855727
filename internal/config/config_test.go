package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockface/internal/clock"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CLOCKFACE_FORMAT", "CLOCKFACE_TICK_INTERVAL",
		"CLOCKFACE_THEME", "CLOCKFACE_ACCOUNT_USER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "clockface.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"format: \"24h\"\ntick_interval: \"250ms\"\ntheme: dark\naccount:\n  user: alex\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "24h", cfg.Format)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "alex", cfg.Account.User)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, clock.Mode24, mode)

	d, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "clockface.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: \"12h\"\ntheme: light\n"), 0o644))

	t.Setenv("CLOCKFACE_FORMAT", "24h")
	t.Setenv("CLOCKFACE_THEME", "dark")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "24h", cfg.Format)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	t.Run("bad format", func(t *testing.T) {
		path := filepath.Join(dir, "fmt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: military\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "military")
	})

	t.Run("bad interval", func(t *testing.T) {
		path := filepath.Join(dir, "interval.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tick_interval: often\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "tick_interval")
	})

	t.Run("negative interval", func(t *testing.T) {
		path := filepath.Join(dir, "neg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tick_interval: \"-1s\"\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "positive")
	})

	t.Run("bad theme", func(t *testing.T) {
		path := filepath.Join(dir, "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0o644))
		_, err := Load(path)
		assert.ErrorContains(t, err, "sepia")
	})
}

func TestLoad_UnreadableFileIsAnError(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	// A directory at the config path forces a read error distinct from
	// os.IsNotExist.
	path := filepath.Join(dir, "confdir")
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := Load(path)
	assert.Error(t, err)
}
