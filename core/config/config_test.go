package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/config"
)

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:"first"`
}

type requiredConfig struct {
	URL string `env:"CONFIG_TEST_REQUIRED_URL,required"`
}

type fileConfig struct {
	Addr  string `yaml:"addr"`
	Proxy string `yaml:"proxy"`
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_NAME", "from-env")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "from-env", first.Name)

	t.Setenv("CONFIG_TEST_CACHED_NAME", "changed")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "from-env", second.Name)

	var fresh cachedConfig
	require.NoError(t, config.Parse(&fresh))
	assert.Equal(t, "changed", fresh.Name)
}

func TestLoadRequired(t *testing.T) {
	var cfg requiredConfig
	assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilConfig)
}

func TestParseFrom(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	require.NoError(t, config.ParseFrom(&cfg, map[string]string{"CONFIG_TEST_REQUIRED_URL": "http://x"}))
	assert.Equal(t, "http://x", cfg.URL)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := fileConfig{Addr: ":5173", Proxy: "http://localhost:3000"}

	require.NoError(t, config.LoadYAML(filepath.Join(dir, "missing.yaml"), &cfg))
	assert.Equal(t, ":5173", cfg.Addr)

	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":8080\"\n"), 0o600))
	require.NoError(t, config.LoadYAML(path, &cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.Proxy)

	require.NoError(t, os.WriteFile(path, []byte("addr: [\n"), 0o600))
	assert.ErrorIs(t, config.LoadYAML(path, &cfg), config.ErrParsingConfig)
}
