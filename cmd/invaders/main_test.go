package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { flagConfig = "" })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := runRoot(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "max_active: 5")
	assert.Contains(t, out, "ship_limit: 3")
	assert.Contains(t, out, "button_label: Play")
}

func TestConfigCommandCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  ship_limit: 5\n"), 0o600))

	out, err := runRoot(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ship_limit: 5")
}

func TestConfigCommandRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fleet:\n  direction: 2\n"), 0o600))

	_, err := runRoot(t, "config", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet.direction")
}

func TestConfigCommandRejectsSmallField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  width: 20\n  height: 4\n"), 0o600))

	_, err := runRoot(t, "config", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot hold a row")
}

func TestNewLogger(t *testing.T) {
	_, _, err := newLogger("", "loud")
	require.Error(t, err)

	logger, closer, err := newLogger("", "debug")
	require.NoError(t, err)
	logger.Info("discarded")
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "invaders.log")
	logger, closer, err = newLogger(path, "info")
	require.NoError(t, err)
	logger.Info("wave cleared", "level", 2)
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wave cleared")
	assert.Contains(t, string(data), "invaders")
	assert.NotContains(t, string(data), "hidden")
}
