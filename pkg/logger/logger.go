// Package logger is the process-wide structured logger.
//
// Calls take a message followed by alternating key/value pairs:
//
//	logger.Info("server starting", "address", addr)
//	logger.Error("failed to load catalog", err)
//
// A lone error value is logged under the "error" key; any other value without
// a string key is logged as "arg<N>".
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	setup("development", os.Stderr)
}

// Init configures the logger for the given environment. "production" writes
// JSON at info level; anything else writes human-readable console output at
// debug level. LOG_LEVEL overrides the level.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()
	setup(env, os.Stderr)
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

func setup(env string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"

	level := zerolog.DebugLevel
	var w io.Writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	if strings.EqualFold(env, "production") {
		level = zerolog.InfoLevel
		w = out
	}

	if lv, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && lv != zerolog.NoLevel {
		level = lv
	}

	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) { write(current().Debug(), msg, args) }
func Info(msg string, args ...any)  { write(current().Info(), msg, args) }
func Warn(msg string, args ...any)  { write(current().Warn(), msg, args) }
func Error(msg string, args ...any) { write(current().Error(), msg, args) }

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) { write(current().Fatal(), msg, args) }

func write(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	appendFields(e, args).Msg(msg)
}

func appendFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.AnErr("error", v)
		case string:
			if i+1 < len(args) {
				e = e.Interface(v, args[i+1])
				i++
			} else {
				e = e.Str(fmt.Sprintf("arg%d", i), v)
			}
		default:
			e = e.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	return e
}
