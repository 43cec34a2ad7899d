package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"
	"github.com/MGTheTrain/crypto-interop/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the shared console logger and returns it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, logger.InitLogger(settings))

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
