package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (ABAPLENS_*)
// 2. Config file (.abaplens.yml in cwd or home)
// 3. Default values
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".abaplens")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("ABAPLENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("generator.target", defaults.Generator.Target)
	v.SetDefault("generator.banner", defaults.Generator.Banner)
	v.SetDefault("analyze.include", defaults.Analyze.Include)
	v.SetDefault("analyze.ignore", defaults.Analyze.Ignore)
}
