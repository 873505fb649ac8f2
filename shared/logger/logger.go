package logger

import (
	"io"
	"os"
	"time"
	"zonecast/config"
	"zonecast/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	InitLoggerTo(os.Stdout, false)
}

// InitLoggerTo points the global logger at out. Production output is plain JSON,
// everything else goes through the console writer.
func InitLoggerTo(out io.Writer, production bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if production {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	log.Trace().Msg("Zerolog initialized.")
}

// InitFromConfig initializes the logger for the configured environment and level.
func InitFromConfig(cfg *config.Config) {
	InitLoggerTo(os.Stdout, cfg.Server.Env == constant.ServerEnvProduction)
	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
