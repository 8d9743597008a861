package window

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// TraceLogger implements app.Logger on raylib's trace log.
type TraceLogger struct{}

func (TraceLogger) Debugf(format string, args ...any) {
	rl.TraceLog(rl.LogDebug, format, args...)
}

func (TraceLogger) Infof(format string, args ...any) {
	rl.TraceLog(rl.LogInfo, format, args...)
}

func (TraceLogger) Warnf(format string, args ...any) {
	rl.TraceLog(rl.LogWarning, format, args...)
}

var levels = map[string]rl.TraceLogLevel{
	"all":     rl.LogAll,
	"debug":   rl.LogDebug,
	"info":    rl.LogInfo,
	"warning": rl.LogWarning,
	"error":   rl.LogError,
	"none":    rl.LogNone,
}

// SetLogLevel sets the trace log threshold by name.
func SetLogLevel(name string) error {
	level, ok := levels[name]
	if !ok {
		return errors.Errorf("unknown log level %q", name)
	}
	rl.SetTraceLogLevel(level)
	return nil
}

// Fatal logs at fatal level and exits with status 1.
func Fatal(err error) {
	rl.TraceLog(rl.LogFatal, "%v", err)
	// LogFatal only exits when the current level lets it through.
	os.Exit(1)
}
