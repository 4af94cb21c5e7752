package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backend modes: the remote scheduling backend, or Google directly.
const (
	BackendModeRemote = "remote"
	BackendModeGoogle = "google"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Schedule bot specifics
	App      AppConfig
	Session  SessionConfig
	Backend  BackendConfig
	Google   GoogleConfig
	Calendar CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	AllowedOrigins  []string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppConfig struct {
	// Timezone is the wall-clock zone standing in for the browser's
	// local time, e.g. "Asia/Seoul".
	Timezone string
}

type SessionConfig struct {
	// StoragePath is the file holding the persisted session identifier.
	// Empty keeps the identifier in memory only.
	StoragePath string
}

type BackendConfig struct {
	Mode    string
	BaseURL string
	Timeout time.Duration
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenDir     string
	LoginTimeout time.Duration
}

type CalendarConfig struct {
	IncludeHolidays  bool
	IncludeBirthdays bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("http_server.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.HTTPServer.AllowedOrigins = origins

	// App
	cfg.App.Timezone = viper.GetString("app.timezone")

	// Session
	cfg.Session.StoragePath = viper.GetString("session.storage_path")
	if storagePath := viper.GetString("session_storage_path"); storagePath != "" {
		cfg.Session.StoragePath = storagePath
	}

	// Backend selection
	cfg.Backend.Mode = viper.GetString("backend.mode")
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	if baseURL := viper.GetString("backend_base_url"); baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}
	if cfg.Backend.Mode != BackendModeRemote && cfg.Backend.Mode != BackendModeGoogle {
		return nil, fmt.Errorf("backend.mode must be %q or %q, got %q",
			BackendModeRemote, BackendModeGoogle, cfg.Backend.Mode)
	}

	// Google OAuth
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	cfg.Google.TokenDir = viper.GetString("google.token_dir")
	cfg.Google.LoginTimeout = viper.GetDuration("google.login_timeout")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	// Calendar list flags
	cfg.Calendar.IncludeHolidays = viper.GetBool("calendar.include_holidays")
	cfg.Calendar.IncludeBirthdays = viper.GetBool("calendar.include_birthdays")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", "http://localhost:5173")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.timezone", "Asia/Seoul")
	viper.SetDefault("session.storage_path", "data/session_id")

	viper.SetDefault("backend.mode", BackendModeRemote)
	viper.SetDefault("backend.base_url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", "30s")

	viper.SetDefault("google.redirect_url", "http://localhost:8080/oauth/google/callback")
	viper.SetDefault("google.token_dir", "data/google_tokens")
	viper.SetDefault("google.login_timeout", "2m")

	viper.SetDefault("calendar.include_holidays", false)
	viper.SetDefault("calendar.include_birthdays", false)
}
