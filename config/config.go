package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Pega case-management backend.
	PegaURL        string `mapstructure:"PEGA_URL"`
	PegaCaseTypeID string `mapstructure:"PEGA_CASE_TYPE_ID"`

	// Gemini API key.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Text-to-speech playback of assistant replies.
	TTSEnabled               bool   `mapstructure:"TTS_ENABLED"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PEGA_URL", "")
	viper.SetDefault("PEGA_CASE_TYPE_ID", "MyOrg-BookTick-Work-BookTicketReservation")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("TTS_ENABLED", false)
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
