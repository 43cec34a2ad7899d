//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-interop/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(config.LogLevelWarning, &buf)

	logger.Info("md5 digest computed")
	logger.Warn("legacy key encoding")
	logger.Error("decryption failed")

	output := buf.String()
	assert.NotContains(t, output, "md5 digest computed")
	assert.Contains(t, output, "legacy key encoding")
	assert.Contains(t, output, "decryption failed")
}

func TestSlogLogger_FatalAndPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(config.LogLevelInfo, &buf)

	exitCode := -1
	logger.exit = func(code int) { exitCode = code }
	logger.Fatal("cannot load config")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "cannot load config")

	assert.PanicsWithValue(t, "broken invariant: 42", func() {
		logger.Panic("broken invariant: ", 42)
	})
}

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "interop.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("RSA encryption succeeded")
	logger.Warn("warn message")
	logger.Error("error message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "RSA encryption succeeded")
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		withFile bool
		wantErr  bool
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			withFile: true,
		},
		{
			name:     "nil settings",
			settings: nil,
			wantErr:  true,
		},
		{
			name: "invalid log level",
			settings: &config.LoggerSettings{
				LogLevel: "verbose",
				LogType:  config.LogTypeConsole,
			},
			wantErr: true,
		},
		{
			name: "unsupported log type",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  "syslog",
			},
			wantErr: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeFile,
				FilePath: "/tmp/interop.log",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			if tt.withFile {
				tt.settings.FilePath = filepath.Join(t.TempDir(), "app.log")
			}

			err := InitLogger(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				logger, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			logger, err := GetLogger()
			require.NoError(t, err)

			if tt.withFile {
				logger.Info("test message")
				_, err := os.Stat(tt.settings.FilePath)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Nil(t, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_Idempotent(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "key pair stored", formatArgs("key pair stored"))
	assert.Equal(t, "bits 2048", formatArgs("bits ", 2048))
}
