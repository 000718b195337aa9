package langid

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/lang"
)

// Config contains langid settings for applications embedding the library.
//
// You can use environment variables to fill it:
// LANGID_DEFAULT_TAG - fallback identifier for negotiation
// LANGID_CACHE_CAPACITY - parse cache capacity
// LANGID_PRELOAD - identifiers to parse and cache at startup
type Config struct {
	// DefaultTag is the fallback identifier used when negotiation finds no
	// match. Default is "en-US".
	// You can use environment variable LANGID_DEFAULT_TAG.
	DefaultTag string `yaml:"default_tag" json:"default_tag" env:"LANGID_DEFAULT_TAG"`

	// CacheCapacity is the maximum number of distinct inputs kept by the
	// parse cache. Default is 1000.
	// You can use environment variable LANGID_CACHE_CAPACITY.
	CacheCapacity int `yaml:"cache_capacity" json:"cache_capacity" env:"LANGID_CACHE_CAPACITY"`

	// Preload lists identifiers to parse and cache at startup.
	// You can use environment variable LANGID_PRELOAD.
	Preload []string `yaml:"preload" json:"preload" env:"LANGID_PRELOAD"`
}

// Read fills the config from a file or from environment variables.
func (cfg *Config) Read(fileName ...string) error {
	if len(fileName) > 0 {
		return cleanenv.ReadConfig(fileName[0], cfg)
	}
	return cleanenv.ReadEnv(cfg)
}

func (cfg *Config) prepareAndValidate() error {
	cfg.DefaultTag = lang.Check(cfg.DefaultTag, "en-US")
	cfg.CacheCapacity = lang.Check(cfg.CacheCapacity, defaultCacheCapacity)

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.DefaultTag, validation.By(validTag)),
		validation.Field(&cfg.CacheCapacity, validation.Min(1)),
		validation.Field(&cfg.Preload, validation.Each(validation.By(validTag))),
	)
}

func validTag(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := Parse(s)
	return err
}

// NewParseCacheFromConfig validates the config, creates a cache with the
// configured capacity and warms it with the preload list.
func NewParseCacheFromConfig(cfg Config) (*ParseCache, error) {
	if err := cfg.prepareAndValidate(); err != nil {
		return nil, err
	}
	cache, err := NewParseCache(cfg.CacheCapacity)
	if err != nil {
		return nil, err
	}
	if len(cfg.Preload) > 0 {
		cache.Warm(cfg.Preload)
	}
	return cache, nil
}
