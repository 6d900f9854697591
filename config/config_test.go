package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: storefront
  log:
    level: info
api:
  baseUrl: http://backend.local/api/
  timeout: 3s
sync:
  serializePerKey: true
http:
  allowOrigins:
    - http://ui.local
`

func writeConfig(t *testing.T, name, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsFileAndAppliesDefaults(t *testing.T) {
	writeConfig(t, "storefront-test", testConfigYAML)

	cfg, err := LoadWithEnv[Config]("storefront-test")
	require.NoError(t, err)
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "http://backend.local/api", cfg.API.BaseURL)
	assert.Equal(t, "http://backend.local", cfg.API.AuthBaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Sync.SerializePerKey)
	assert.Equal(t, defaultInboxSize, cfg.Sync.InboxSize)
	assert.Equal(t, CacheProviderBlob, cfg.Cache.Provider)
	assert.Equal(t, defaultCacheBucketURL, cfg.Cache.BucketURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHTTPHost, cfg.HTTP.Host)
	assert.Equal(t, []string{"http://ui.local"}, cfg.HTTP.AllowOrigins)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeConfig(t, "storefront-test", testConfigYAML)
	t.Setenv("API_BASEURL", "http://override.local/api")

	cfg, err := LoadWithEnv[Config]("storefront-test")
	require.NoError(t, err)

	assert.Equal(t, "http://override.local/api", cfg.API.BaseURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults_RequiresBaseURL(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.baseUrl")
}
