package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	AccountBaseURL     string `mapstructure:"ACCOUNT_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	CredStoreBackend   string `mapstructure:"CREDSTORE_BACKEND"`
	CredStorePath      string `mapstructure:"CREDSTORE_PATH"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	PostgresURL        string `mapstructure:"POSTGRES_URL"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("API_BASE_URL", "https://sportmap.akaver.com/api/v1")
	viper.SetDefault("ACCOUNT_BASE_URL", "https://sportmap.akaver.com/api/v1/Account")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CREDSTORE_BACKEND", "sqlite")
	viper.SetDefault("CREDSTORE_PATH", "sportmap.db")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
