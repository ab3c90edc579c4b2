package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASDOCSEnv clears all OASDOCS_* env vars to isolate tests from the ambient environment.
func clearOASDOCSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASDOCS_CACHE_ENABLED", "OASDOCS_CACHE_MAX_SIZE",
		"OASDOCS_CACHE_FILE_TTL", "OASDOCS_CACHE_URL_TTL",
		"OASDOCS_CACHE_CONTENT_TTL", "OASDOCS_CACHE_SWEEP_INTERVAL",
		"OASDOCS_LIST_LIMIT", "OASDOCS_LIST_DETAIL_LIMIT",
		"OASDOCS_MAX_INLINE_SIZE", "OASDOCS_MAX_LIMIT",
		"OASDOCS_ALLOW_PRIVATE_IPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASDOCSEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 25, c.ListDetailLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASDOCSEnv(t)
	t.Setenv("OASDOCS_CACHE_ENABLED", "false")
	t.Setenv("OASDOCS_CACHE_MAX_SIZE", "50")
	t.Setenv("OASDOCS_CACHE_FILE_TTL", "30m")
	t.Setenv("OASDOCS_CACHE_URL_TTL", "2m")
	t.Setenv("OASDOCS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASDOCS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASDOCS_LIST_LIMIT", "200")
	t.Setenv("OASDOCS_LIST_DETAIL_LIMIT", "50")
	t.Setenv("OASDOCS_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASDOCS_MAX_LIMIT", "500")
	t.Setenv("OASDOCS_ALLOW_PRIVATE_IPS", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 200, c.ListLimit)
	assert.Equal(t, 50, c.ListDetailLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, 500, c.MaxLimit)
	assert.True(t, c.AllowPrivateIPs)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASDOCSEnv(t)
	t.Setenv("OASDOCS_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASDOCS_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASDOCS_CACHE_ENABLED", "maybe")
	t.Setenv("OASDOCS_LIST_LIMIT", "-5")
	t.Setenv("OASDOCS_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASDOCS_MAX_LIMIT", "0")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearOASDOCSEnv(t)
	// Only override some values; others stay at defaults.
	t.Setenv("OASDOCS_LIST_LIMIT", "42")
	t.Setenv("OASDOCS_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.ListLimit)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	// Unchanged defaults:
	assert.Equal(t, 25, c.ListDetailLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
