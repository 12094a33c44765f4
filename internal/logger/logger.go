// Package logger holds the process-wide charmbracelet logger. Records go to a
// rotating file under the config dir; debug mode also mirrors them.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/lessonprompt/internal/constants"
)

// Rotation limits for the log file
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Logger is nil until Init runs. The helpers drop records until then.
var Logger *log.Logger

type Config struct {
	Debug     bool
	ConfigDir string
	// Mirror receives every record in debug mode, stderr when nil.
	// The TUI owns the terminal and passes io.Discard.
	Mirror io.Writer
}

// Path returns the log file location under configDir
func Path(configDir string) string {
	return filepath.Join(configDir, "logs", constants.LogFileName)
}

func Init(cfg Config) error {
	file := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}

	Logger = log.NewWithOptions(output(cfg, file), log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level(cfg.Debug),
		Prefix:          constants.AppName,
	})
	return nil
}

func output(cfg Config, file string) io.Writer {
	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	if !cfg.Debug {
		return rotating
	}
	mirror := cfg.Mirror
	if mirror == nil {
		mirror = os.Stderr
	}
	return io.MultiWriter(mirror, rotating)
}

func level(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// The helpers mark themselves with Helper so caller reports in debug mode
// point at the code that logged, not at this file.

func Debug(msg string, keyvals ...interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Error(msg, keyvals...)
}
