package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"oorms/internal/jobs"
	"oorms/internal/pkg/errs"
)

type Config struct {
	HTTPPort       string
	LogLevel       string
	LogFormat      string
	CatalogFile    string
	ReportSchedule string
	ConsoleEnabled bool
}

// LookupFunc reads one setting, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads the settings through lookup and applies defaults for the
// ones that are unset or blank.
func LoadConfig(lookup LookupFunc) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	config := Config{
		HTTPPort:       get("HTTP_PORT", "8080"),
		LogLevel:       get("LOG_LEVEL", "info"),
		LogFormat:      get("LOG_FORMAT", "text"),
		CatalogFile:    get("CATALOG_FILE", ""),
		ReportSchedule: get("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
	}

	var configErrs []error
	if port, err := strconv.Atoi(config.HTTPPort); err != nil || port < 1 || port > 65535 {
		configErrs = append(configErrs, errs.NewValueIsOutOfRangeError("HTTP_PORT", config.HTTPPort, 1, 65535))
	}
	consoleEnabled, err := strconv.ParseBool(get("CONSOLE_ENABLED", "true"))
	if err != nil {
		configErrs = append(configErrs, errs.NewValueIsInvalidErrorWithCause("CONSOLE_ENABLED", err))
	}
	config.ConsoleEnabled = consoleEnabled

	if err := errors.Join(configErrs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return "0.0.0.0:" + c.HTTPPort
}
