package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Converter struct {
		SourceZone    string   `envconfig:"SOURCE_ZONE"`
		TargetZones   []string `envconfig:"TARGET_ZONES"`
		CatalogFile   string   `envconfig:"CATALOG_FILE"`
		Basis         string   `envconfig:"BASIS"`
		RefineOffsets *bool    `envconfig:"REFINE_OFFSETS"`
		TickMillis    int      `envconfig:"TICK_MILLIS"`
	} `envconfig:"CONVERTER"`

	Session struct {
		IdleTimeoutSeconds int `envconfig:"IDLE_TIMEOUT_SECONDS"`
		MaxTargets         int `envconfig:"MAX_TARGETS"`
	} `envconfig:"SESSION"`

	Cache struct {
		Enable bool `envconfig:"ENABLE"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

const (
	BasisCivil   = "civil"
	BasisInstant = "instant"

	defaultAppName            = "zonecast"
	defaultPort               = "8080"
	defaultSourceZone         = "UTC"
	defaultTickMillis         = 1000
	defaultIdleTimeoutSeconds = 30 * 60
	defaultMaxTargets         = 64
	defaultCacheTTL           = 300
)

var defaultTargetZones = []string{"America/New_York", "Europe/London", "Asia/Tokyo"}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.Defaults()
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// Defaults fills every unset value the converter needs to run.
func (c *Config) Defaults() {
	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}

	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}

	if c.Converter.SourceZone == "" {
		c.Converter.SourceZone = defaultSourceZone
	}

	if c.Converter.TargetZones == nil {
		c.Converter.TargetZones = append([]string(nil), defaultTargetZones...)
	}

	switch c.Converter.Basis {
	case BasisCivil, BasisInstant:
	case "":
		c.Converter.Basis = BasisCivil
	default:
		log.Warn().Str("basis", c.Converter.Basis).Msg("Unknown conversion basis, using civil")

		c.Converter.Basis = BasisCivil
	}

	if c.Converter.RefineOffsets == nil {
		refine := true
		c.Converter.RefineOffsets = &refine
	}

	if c.Converter.TickMillis <= 0 {
		c.Converter.TickMillis = defaultTickMillis
	}

	if c.Session.IdleTimeoutSeconds <= 0 {
		c.Session.IdleTimeoutSeconds = defaultIdleTimeoutSeconds
	}

	if c.Session.MaxTargets <= 0 {
		c.Session.MaxTargets = defaultMaxTargets
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = defaultCacheTTL
	}
}

// Refine reports whether the offset resolver should refine its first lookup.
func (c *Config) Refine() bool {
	return c.Converter.RefineOffsets == nil || *c.Converter.RefineOffsets
}
