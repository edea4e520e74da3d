// Package gnsslog configures the leveled logger shared by every package
// in the driver, mapping the severities the mode/BIT machinery raises
// (info, warning, error, critical) onto go-logging's levels.
package gnsslog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.8s} %{module} ▶ %{message}`,
)

// New configures the default backend (stderr) and returns a logger for
// module, honoring GNSSDRV_LOG_LEVEL if set.
func New(module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFromEnv(), module)
	logging.SetBackend(leveled)
	return logging.MustGetLogger(module)
}

func levelFromEnv() logging.Level {
	switch os.Getenv("GNSSDRV_LOG_LEVEL") {
	case "CRITICAL":
		return logging.CRITICAL
	case "ERROR":
		return logging.ERROR
	case "WARNING":
		return logging.WARNING
	case "NOTICE":
		return logging.NOTICE
	case "DEBUG":
		return logging.DEBUG
	default:
		return logging.INFO
	}
}
