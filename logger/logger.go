package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
//
// The TUI owns stdout and stderr while it is running, so Initialize sends
// output to a log file rather than the terminal. Anything logged before
// Initialize is called goes nowhere.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time so early callers never panic.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger writing to the given file path.
// Debug mode lowers the level to Debug and enables caller annotations.
// An empty path sends output to stderr, which is only sensible for
// subcommands that never enter the TUI.
func Initialize(path string, debug bool) error {
	var sink zapcore.WriteSyncer
	if path == "" {
		sink = zapcore.AddSync(os.Stderr)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		sink = zapcore.AddSync(f)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		sink,
		levelFor(debug),
	)

	opts := []zap.Option{}
	if debug {
		opts = append(opts, zap.AddCaller())
	}

	Logger = zap.New(core, opts...).Sugar()
	return nil
}

// DefaultLogPath returns the log file location under the user state dir,
// falling back to the temp dir when the home directory is unknown.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hsctui", "hsctui.log")
	}
	return filepath.Join(home, ".local", "state", "hsctui", "hsctui.log")
}

func levelFor(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
