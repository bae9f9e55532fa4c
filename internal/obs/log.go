package obs

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.Mutex
	logger   *zerolog.Logger
)

// NewLogger returns a zerolog logger tagged with the service name.
func NewLogger(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Logger returns the shared logger used across the portal.
func Logger() zerolog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		l := NewLogger("ruamngan-portal")
		logger = &l
	}
	return *logger
}

// SetLogger replaces the shared logger. Used by the serve command and tests.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = &l
}
