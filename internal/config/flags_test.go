package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "ticklist.yaml")
	writeFile(t, path, "storage:\n  slot: fromfile\nids:\n  strategy: sequence\n")

	fs := pflag.NewFlagSet("ticklist", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--backend", "file", "--log-level", "debug"}))

	cfg, err := LoadFromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".ticklist", "slots"), cfg.Storage.Path)
	assert.Equal(t, "fromfile", cfg.Storage.Slot)
	assert.Equal(t, IDsSequence, cfg.IDs.Strategy)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRegisterFlags_MatchConfigKeys(t *testing.T) {
	fs := pflag.NewFlagSet("ticklist", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.NotNil(t, fs.Lookup(ConfigFlag))
	for name := range flagKeys {
		assert.NotNil(t, fs.Lookup(name), "flag --%s", name)
	}
}
