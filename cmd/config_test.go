package cmd_test

import (
	"testing"

	"oorms/cmd"
	"oorms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) cmd.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		config, err := cmd.LoadConfig(lookupFrom(nil))

		require.NoError(t, err)
		assert.Equal(t, cmd.Config{
			HTTPPort:       "8080",
			LogLevel:       "info",
			LogFormat:      "text",
			CatalogFile:    "",
			ReportSchedule: "0 * * * * *",
			ConsoleEnabled: true,
		}, config)
		assert.Equal(t, "0.0.0.0:8080", config.Address())
	})

	t.Run("should read every setting", func(t *testing.T) {
		config, err := cmd.LoadConfig(lookupFrom(map[string]string{
			"HTTP_PORT":       "9090",
			"LOG_LEVEL":       "debug",
			"LOG_FORMAT":      "json",
			"CATALOG_FILE":    "/etc/oorms/catalog.yaml",
			"REPORT_SCHEDULE": "*/30 * * * * *",
			"CONSOLE_ENABLED": "false",
		}))

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "json", config.LogFormat)
		assert.Equal(t, "/etc/oorms/catalog.yaml", config.CatalogFile)
		assert.Equal(t, "*/30 * * * * *", config.ReportSchedule)
		assert.False(t, config.ConsoleEnabled)
	})

	t.Run("should treat blank values as unset", func(t *testing.T) {
		config, err := cmd.LoadConfig(lookupFrom(map[string]string{"HTTP_PORT": "  "}))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
	})

	t.Run("should report every invalid setting", func(t *testing.T) {
		_, err := cmd.LoadConfig(lookupFrom(map[string]string{
			"HTTP_PORT":       "70000",
			"CONSOLE_ENABLED": "sometimes",
		}))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "HTTP_PORT")
		assert.Contains(t, err.Error(), "CONSOLE_ENABLED")
	})
}
