package logger_test

import (
	"agendador/config"
	"agendador/shared/logger"
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("exclusion constraint violated"))

	assert.Contains(t, buf.String(), "exclusion constraint violated")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	stdout := os.Stdout

	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		os.Stdout = stdout
	}()

	read, write, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = write

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "agendador-api"

	logger.Configure(cfg)
	log.Debug().Msg("dropped")
	log.Info().Str("reservation_id", "r-1").Msg("reservation approved")

	require.NoError(t, write.Close())

	out, err := io.ReadAll(read)
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.NotContains(t, string(out), "dropped")
	assert.Contains(t, string(out), `"service":"agendador-api"`)
	assert.Contains(t, string(out), `"reservation_id":"r-1"`)
}
