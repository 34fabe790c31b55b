package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Translator TranslatorConfig `mapstructure:"translator"`
	Database   DatabaseConfig   `mapstructure:"database"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
}

// TranslatorConfig points at the translation backend.
type TranslatorConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // zero means no timeout
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale              string        `mapstructure:"locale"`
	NotificationTimeout time.Duration `mapstructure:"notification_timeout"`
	StrictNotifications bool          `mapstructure:"strict_notifications"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

const envPrefix = "ANUVAD"

// Load reads configuration from .env, file and env. Env var overrides use prefix ANUVAD_.
func Load() (Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(envPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "anuvad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit ANUVAD_CONFIG that cannot be read is an error, a missing default file is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the widget cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Translator.BaseURL) == "" {
		return fmt.Errorf("config: translator.base_url is required")
	}
	if c.Translator.Timeout < 0 {
		return fmt.Errorf("config: translator.timeout must not be negative")
	}
	if c.UI.NotificationTimeout <= 0 {
		return fmt.Errorf("config: ui.notification_timeout must be positive")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("config: database.path is required")
	}
	return nil
}

// Path is the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".config", "anuvad", "config.toml")
}

// Defaults returns the built-in configuration, ignoring files and env.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// EnsureFile writes the defaults to Path on first run so there is a file to
// edit. It reports whether a file was written.
func EnsureFile() (bool, error) {
	_, err := os.Stat(Path())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := Save(Defaults()); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("translator.base_url", cfg.Translator.BaseURL)
	v.Set("translator.timeout", cfg.Translator.Timeout.String())
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.notification_timeout", cfg.UI.NotificationTimeout.String())
	v.Set("ui.strict_notifications", cfg.UI.StrictNotifications)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	v.SetDefault("translator.base_url", "http://127.0.0.1:8000")
	v.SetDefault("translator.timeout", "0s")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "anuvad", "anuvad.db"))
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.notification_timeout", "3s")
	v.SetDefault("ui.strict_notifications", true)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "anuvad", "anuvad.log"))
	v.SetDefault("log.level", "info")
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}
