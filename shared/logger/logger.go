package logger

import (
	"agendador/config"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultServiceName = "agendador"
	envProduction      = "production"
)

// InitLogger installs a console logger at trace level so config loading can log.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = newLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, defaultServiceName)
}

// Configure applies the configured level and, in production, switches to JSON
// lines on stdout tagged with the app name.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if cfg.Server.Env != envProduction {
		return
	}

	name := cfg.App.Name
	if name == "" {
		name = defaultServiceName
	}

	log.Logger = newLogger(os.Stdout, name)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("unknown log level, falling back to trace")
	}

	zerolog.SetGlobalLevel(level)
}

func newLogger(out io.Writer, service string) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Str("service", service).Logger()
}
