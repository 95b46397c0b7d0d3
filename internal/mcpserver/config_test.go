package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearPatchtoolsEnv clears all PATCHTOOLS_* env vars to isolate tests from
// the ambient environment.
func clearPatchtoolsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PATCHTOOLS_CACHE_ENABLED", "PATCHTOOLS_CACHE_MAX_SIZE",
		"PATCHTOOLS_CACHE_FILE_TTL", "PATCHTOOLS_CACHE_CONTENT_TTL",
		"PATCHTOOLS_CACHE_SWEEP_INTERVAL", "PATCHTOOLS_MAX_INLINE_SIZE",
		"PATCHTOOLS_APPLY_LENIENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearPatchtoolsEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 20, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(4*1024*1024), c.MaxInlineSize)
	assert.False(t, c.ApplyLenient)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearPatchtoolsEnv(t)
	t.Setenv("PATCHTOOLS_CACHE_ENABLED", "false")
	t.Setenv("PATCHTOOLS_CACHE_MAX_SIZE", "50")
	t.Setenv("PATCHTOOLS_CACHE_FILE_TTL", "30m")
	t.Setenv("PATCHTOOLS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("PATCHTOOLS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("PATCHTOOLS_MAX_INLINE_SIZE", "5242880")
	t.Setenv("PATCHTOOLS_APPLY_LENIENT", "true")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.ApplyLenient)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearPatchtoolsEnv(t)
	t.Setenv("PATCHTOOLS_CACHE_ENABLED", "not-a-bool")
	t.Setenv("PATCHTOOLS_CACHE_MAX_SIZE", "-5")
	t.Setenv("PATCHTOOLS_CACHE_FILE_TTL", "soon")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 20, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
}
