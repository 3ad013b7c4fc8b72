package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	defaultJWTSecret        = "secret1234"
	defaultJWTRefreshSecret = "refreshsecret1234"

	defaultJWTExpiration        = 3600
	defaultJWTRefreshExpiration = 7200
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTRefreshSecret     string `env:"JWT_REFRESH_SECRET"`
	JWTExpiration        int    `env:"JWT_EXPIRATION"`
	JWTRefreshExpiration int    `env:"JWT_REFRESH_EXPIRATION"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == conf.JWTRefreshSecret {
		// рефреш токены подписываются отдельным секретом
		return nil, errors.New("JWT secret and refresh secret must differ")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),

		JWTSecret:            defaultIfBlank(envConfig.JWTSecret, defaultJWTSecret),
		JWTRefreshSecret:     defaultIfBlank(envConfig.JWTRefreshSecret, defaultJWTRefreshSecret),
		JWTExpiration:        defaultIfZero(envConfig.JWTExpiration, defaultJWTExpiration),
		JWTRefreshExpiration: defaultIfZero(envConfig.JWTRefreshExpiration, defaultJWTRefreshExpiration),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value int, defaultValue int) int {
	if value == 0 {
		return defaultValue
	}
	return value
}
