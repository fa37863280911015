package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv               = "local"
	defaultSheetURL          = "https://sheetdb.io/api/v1/za4jkitymn219"
	defaultConfigDir         = ".bomkeeper"
	defaultRequestTimeout    = 30
	defaultReloadDelay       = 1000
	defaultDeleteReloadDelay = 500
	defaultStatusTTL         = 5
	defaultPageSize          = 12
)

type Config struct {
	Env               string        `mapstructure:"app_env"`
	SheetURL          string        `mapstructure:"sheetdb_url"`
	ConfigDir         string        `mapstructure:"config_dir"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout_seconds"`
	ReloadDelay       time.Duration `mapstructure:"reload_delay_ms"`
	DeleteReloadDelay time.Duration `mapstructure:"delete_reload_delay_ms"`
	StatusTTL         time.Duration `mapstructure:"status_ttl_seconds"`
	PageSize          int           `mapstructure:"page_size"`
	AssumeYes         bool          `mapstructure:"assume_yes"`
}

// MustLoad загружает конфигурацию клиента и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load загружает конфигурацию из .env, переменных окружения и файла конфигурации
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SHEETDB_URL", defaultSheetURL)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	viper.SetDefault("RELOAD_DELAY_MS", defaultReloadDelay)
	viper.SetDefault("DELETE_RELOAD_DELAY_MS", defaultDeleteReloadDelay)
	viper.SetDefault("STATUS_TTL_SECONDS", defaultStatusTTL)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("ASSUME_YES", false)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	config := &Config{
		Env:               viper.GetString("APP_ENV"),
		SheetURL:          viper.GetString("SHEETDB_URL"),
		ConfigDir:         configDir,
		RequestTimeout:    time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		ReloadDelay:       time.Duration(viper.GetInt("RELOAD_DELAY_MS")) * time.Millisecond,
		DeleteReloadDelay: time.Duration(viper.GetInt("DELETE_RELOAD_DELAY_MS")) * time.Millisecond,
		StatusTTL:         time.Duration(viper.GetInt("STATUS_TTL_SECONDS")) * time.Second,
		PageSize:          viper.GetInt("PAGE_SIZE"),
		AssumeYes:         viper.GetBool("ASSUME_YES"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SheetURL == "" {
		return fmt.Errorf("sheetdb_url не может быть пустым")
	}
	u, err := url.Parse(c.SheetURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("sheetdb_url должен быть абсолютным URL: %q", c.SheetURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть положительным")
	}
	if c.ReloadDelay < 0 || c.DeleteReloadDelay < 0 {
		return fmt.Errorf("задержка перезагрузки не может быть отрицательной")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size должен быть положительным")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
