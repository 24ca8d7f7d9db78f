package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"api"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	UI struct {
		MessageTTL time.Duration `mapstructure:"message_ttl"`
	} `mapstructure:"ui"`
	Session struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000/")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("server.port", "8080")
	v.SetDefault("ui.message_ttl", 5*time.Second)
	v.SetDefault("session.secret_key", "change-me-console-secret")
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("log.level", "info")
}

// Load reads config.yml from path (when present) on top of the defaults and
// lets BANKCONSOLE_* environment variables override any key, e.g.
// BANKCONSOLE_API_BASE_URL.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("bankconsole")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error loading configuration, %s", err)
	}
	AppConfig = cfg
}
