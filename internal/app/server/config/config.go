package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = "../../.env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
}

type DB struct {
	Driver      string `env:"STORAGE"`
	SQLitePath  string `env:"SQLITE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// MustLoad загружает конфигурацию сервера и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("storage", DriverSQLite)
	viper.SetDefault("sqlite_path", "bomkeeper.db")
	viper.SetDefault("migrations_path", "migrations")

	config := Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			Driver:      viper.GetString("storage"),
			SQLitePath:  viper.GetString("sqlite_path"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			return fmt.Errorf("sqlite_path не может быть пустым")
		}
	case DriverPostgres:
		if c.DB.DatabaseURI == "" {
			return fmt.Errorf("database_uri обязателен для storage=postgres")
		}
	default:
		return fmt.Errorf("неизвестное хранилище: %q", c.DB.Driver)
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}
	return nil
}
