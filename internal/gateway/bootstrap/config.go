package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Lexv0lk/secondhand-market/internal/pkg/database"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/env"
	"gopkg.in/yaml.v2"
)

const DefaultStartBalance int64 = 100000

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MarketConfig struct {
	HttpPort     string                    `yaml:"http_port"`
	DbSettings   database.PostgresSettings `yaml:"database"`
	JwtSecret    string                    `yaml:"jwt_secret"`
	Redis        RedisConfig               `yaml:"redis"`
	StartBalance int64                     `yaml:"start_balance"`
	Log          LogConfig                 `yaml:"log"`
}

func DefaultConfig() MarketConfig {
	return MarketConfig{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:     "admin",
			Password: "password",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "market",
		},
		StartBalance: DefaultStartBalance,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig layers the YAML file at path (skipped when empty) and then the environment over the defaults.
func LoadConfig(path string) (MarketConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return MarketConfig{}, fmt.Errorf("unable to read %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return MarketConfig{}, fmt.Errorf("unable to parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return MarketConfig{}, err
	}

	if cfg.JwtSecret == "" {
		return MarketConfig{}, errors.New("jwt secret is not configured")
	}

	if cfg.StartBalance < 0 {
		return MarketConfig{}, fmt.Errorf("start balance must not be negative, got %d", cfg.StartBalance)
	}

	if !strings.Contains(cfg.HttpPort, ":") {
		cfg.HttpPort = ":" + cfg.HttpPort
	}

	return cfg, nil
}

func applyEnv(cfg *MarketConfig) error {
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	if err := env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled); err != nil {
		return err
	}

	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)

	env.TrySetFromEnv(env.EnvRedisAddr, &cfg.Redis.Addr)
	env.TrySetFromEnv(env.EnvRedisPassword, &cfg.Redis.Password)

	if err := env.TrySetInt64FromEnv(env.EnvStartBalance, &cfg.StartBalance); err != nil {
		return err
	}

	env.TrySetFromEnv(env.EnvLogLevel, &cfg.Log.Level)
	env.TrySetFromEnv(env.EnvLogFormat, &cfg.Log.Format)

	return nil
}
