package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Dialogue       DialogueConfig
	Telegram       TelegramConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DialogueConfig tunes the dialogue engine.
type DialogueConfig struct {
	Timezone   string
	PendingTTL time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// GeminiConfig configures the optional LLM-backed intent classifier.
// With no API key the engine runs rule-based only.
type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	RequestsPerMin int
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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Dialogue.Timezone = viper.GetString("dialogue.timezone")
	cfg.Dialogue.PendingTTL = viper.GetDuration("dialogue.pending_ttl")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("dialogue.timezone", "UTC")
	viper.SetDefault("dialogue.pending_ttl", "10m")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
