package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	UI    UIConfig    `mapstructure:"ui"`
}

// CacheConfig holds view-state cache settings. Capacity is fixed at
// construction: changing it mid-run is not supported.
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	StartExample string `mapstructure:"start_example"`
}

// Load reads configuration from file and env. Env var overrides use prefix TREEVIZ_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("cache.capacity", 50)
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("ui.start_example", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TREEVIZ_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "treeviz"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TREEVIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
