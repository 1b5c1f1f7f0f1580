package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name          string
		loglevel      string
		logformat     string
		expectedLevel slog.Level
		expectedError error
	}{
		{
			name:          "text",
			loglevel:      "INFO",
			logformat:     "text",
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "json",
			loglevel:      "DEBUG",
			logformat:     "json",
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "tint, lower case level",
			loglevel:      "warn",
			logformat:     "tint",
			expectedLevel: slog.LevelWarn,
		},
		{
			name:          "invalid log format",
			loglevel:      "INFO",
			logformat:     "invalid format",
			expectedError: ErrLoggerInvalidLogFormat,
		},
		{
			name:          "invalid log level",
			loglevel:      "INVALID_LEVEL",
			logformat:     "text",
			expectedError: ErrLoggerInvalidLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var buf bytes.Buffer

			// when
			sut, err := NewLogger(tc.loglevel, tc.logformat, WithWriter(&buf))

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, sut)
				return
			}

			require.NoError(t, err)
			assert.True(t, sut.Enabled(context.Background(), tc.expectedLevel))
			assert.False(t, sut.Enabled(context.Background(), tc.expectedLevel-1))

			sut.Log(context.Background(), tc.expectedLevel, "test")
			assert.Contains(t, buf.String(), "test")
		})
	}
}

func TestNewLoggerWithService(t *testing.T) {
	// given
	var buf bytes.Buffer

	// when
	sut, err := NewLogger("INFO", "json", WithWriter(&buf), WithService("coordinatord"))
	require.NoError(t, err)
	sut.Info("started")

	// then
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "coordinatord", record["service"])
	assert.Equal(t, "started", record["msg"])
}
