package langid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	assert.NoError(t, cfg.prepareAndValidate())
	assert.Equal(t, "en-US", cfg.DefaultTag)
	assert.Equal(t, defaultCacheCapacity, cfg.CacheCapacity)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{DefaultTag: "not a tag"}
	assert.Error(t, cfg.prepareAndValidate())

	cfg = Config{CacheCapacity: -5}
	assert.Error(t, cfg.prepareAndValidate())

	cfg = Config{Preload: []string{"en-US", "oops!!"}}
	assert.Error(t, cfg.prepareAndValidate())

	cfg = Config{
		DefaultTag:    "de-AT",
		CacheCapacity: 50,
		Preload:       []string{"en-US", "fr-FR"},
	}
	assert.NoError(t, cfg.prepareAndValidate())
}

func TestConfigReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langid.yml")
	data := "default_tag: fr-CA\ncache_capacity: 10\npreload:\n  - en-US\n  - fr-CA\n"
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var cfg Config
	assert.NoError(t, cfg.Read(path))
	assert.Equal(t, "fr-CA", cfg.DefaultTag)
	assert.Equal(t, 10, cfg.CacheCapacity)
	assert.Equal(t, []string{"en-US", "fr-CA"}, cfg.Preload)
}

func TestConfigReadEnv(t *testing.T) {
	t.Setenv("LANGID_DEFAULT_TAG", "es-MX")
	t.Setenv("LANGID_CACHE_CAPACITY", "25")

	var cfg Config
	assert.NoError(t, cfg.Read())
	assert.Equal(t, "es-MX", cfg.DefaultTag)
	assert.Equal(t, 25, cfg.CacheCapacity)
}

func TestNewParseCacheFromConfig(t *testing.T) {
	cache, err := NewParseCacheFromConfig(Config{
		CacheCapacity: 10,
		Preload:       []string{"en-US", "zh-Hans-CN"},
	})
	assert.NoError(t, err)
	defer cache.Close()

	id, err := cache.Parse("zh-Hans-CN")
	assert.NoError(t, err)
	assert.Equal(t, "zh-Hans-CN", id.String())

	_, err = NewParseCacheFromConfig(Config{DefaultTag: "!!"})
	assert.Error(t, err)
}
