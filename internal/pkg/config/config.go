package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (port, hotel contact)
// - default: Values common across all environments (storage layout, timezone)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	Hotel  HotelConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type StoreConfig struct {
	// Directory holding the serialized booking collection.
	Dir string `envconfig:"STORE_DIR" default:"data"`
	// Namespace is the single key the whole collection lives under.
	Namespace string `envconfig:"STORE_NAMESPACE" default:"hotel_bookings_v1"`
}

type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAgeSeconds    int      `envconfig:"CORS_MAX_AGE_SECONDS" default:"43200"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type HotelConfig struct {
	Name string `envconfig:"HOTEL_NAME" default:"Grand Hotel"`
	// Country code plus number, no leading zero: 081234567890 -> 6281234567890
	WhatsAppNumber string `envconfig:"HOTEL_WHATSAPP" default:"6281234567890"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Dir:       "data",
			Namespace: "hotel_bookings_test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Hotel: HotelConfig{
			Name:           "Grand Hotel",
			WhatsAppNumber: "6281234567890",
		},
	}
}
