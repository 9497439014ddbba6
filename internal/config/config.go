package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from a config
// file or environment variables.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	DBSource      string        `mapstructure:"DB_SOURCE"`
	RedisURL      string        `mapstructure:"REDIS_URL"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	TokenDuration time.Duration `mapstructure:"TOKEN_DURATION"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
}

// LoadConfig reads configuration from app.env in the given path, with
// environment variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("TOKEN_DURATION", 168*time.Hour)
	viper.SetDefault("CACHE_TTL", 300*time.Second)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
