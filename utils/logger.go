package utils

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

// InitLogger configures the global zerolog logger. Development gets a
// human-readable console writer, everything else gets JSON on stdout.
func InitLogger(env, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// PrintLogInfo logs the outcome of a handler call.
func PrintLogInfo(who *string, statusCode int, functionName string, err *error) {
	user := "Unknown"
	if who != nil && *who != "" {
		user = *who
	}

	var event *zerolog.Event
	switch {
	case statusCode >= http.StatusInternalServerError:
		event = log.Error()
	case statusCode >= http.StatusBadRequest:
		event = log.Warn()
	default:
		event = log.Info()
	}

	event = event.Str("user", user).Int("status", statusCode).Str("function", functionName)
	if err != nil && *err != nil {
		event = event.Err(*err)
	}
	event.Msg(fmt.Sprintf("User: %s | Status: %d | Function: %s", user, statusCode, functionName))
}
