package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments (timezone, fleet size, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Fleet       FleetConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// FleetConfig is the inventory added to the ledger at startup.
type FleetConfig struct {
	Sedan int `envconfig:"FLEET_SEDAN" default:"3"`
	SUV   int `envconfig:"FLEET_SUV" default:"2"`
	Van   int `envconfig:"FLEET_VAN" default:"1"`
}

type ReservationConfig struct {
	// uuid | sequence
	IDStrategy string `envconfig:"RESERVATION_ID_STRATEGY" default:"uuid"`
}

const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

func (c ReservationConfig) Validate() error {
	switch c.IDStrategy {
	case IDStrategyUUID, IDStrategySequence:
		return nil
	default:
		return fmt.Errorf("unsupported reservation id strategy %q", c.IDStrategy)
	}
}

func (c FleetConfig) Validate() error {
	if c.Sedan < 0 || c.SUV < 0 || c.Van < 0 {
		return fmt.Errorf("fleet sizes cannot be negative: sedan=%d suv=%d van=%d", c.Sedan, c.SUV, c.Van)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Reservation.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Fleet.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Fleet: FleetConfig{
			Sedan: 2,
			SUV:   1,
			Van:   1,
		},
		Reservation: ReservationConfig{
			IDStrategy: IDStrategySequence,
		},
	}
}
