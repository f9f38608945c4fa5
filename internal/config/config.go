package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Store struct {
		Driver      string `mapstructure:"driver"` // file | redis | postgres | memory
		DataDir     string `mapstructure:"data_dir"`
		RedisAddr   string `mapstructure:"redis_addr"`
		DatabaseURL string `mapstructure:"database_url"`
	} `mapstructure:"store"`
	POS struct {
		AllowOversell bool   `mapstructure:"allow_oversell"`
		StoreName     string `mapstructure:"store_name"`
		StoreAddress  string `mapstructure:"store_address"`
		StorePhone    string `mapstructure:"store_phone"`
	} `mapstructure:"pos"`
}

// Load reads configuration from config.yml, falling back to defaults, with
// environment overrides (POS_STORE_DRIVER, POS_SERVER_PORT, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "3000")
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.data_dir", "./data")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.database_url", "")
	// Kebijakan till: penjualan tetap jalan walau qty > stok, stok clamp 0.
	v.SetDefault("pos.allow_oversell", true)
	v.SetDefault("pos.store_name", "Toko Sembako Jaya")
	v.SetDefault("pos.store_address", "Jl. Raya Pasar No. 45")
	v.SetDefault("pos.store_phone", "0812-3456-7890")

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults + env are enough.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
