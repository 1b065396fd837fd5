package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds rangectl's defaults, loaded from a TOML file. No CLI flag
// overrides these fields; the only flag, --config, selects the file. Fields
// the file does not set keep defaultConfig's values below.
type config struct {
	DBType    string `toml:"db_type"`
	InnerType string `toml:"inner_type"`
	LogLevel  string `toml:"log_level"`
	Format    string `toml:"format"`
}

func defaultConfig() config {
	return config{
		DBType:    "int8range",
		InnerType: "int8",
		LogLevel:  "info",
		Format:    "text",
	}
}

// loadConfig reads path as TOML into a config seeded with defaultConfig's
// values, so a partial file only overrides what it sets. A missing path is
// not an error: rangectl runs fine on defaults alone.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
