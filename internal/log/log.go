package log

import (
	"io"
	"log"
	"strings"
	"sync/atomic"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString maps a config value to a Level. Unknown values fall back to INFO.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is a small leveled logger. Child loggers made with With share the
// parent's level, so SetLevel on any of them affects the whole tree.
type Logger struct {
	logger *log.Logger
	level  *atomic.Int32
	prefix string
}

func New(out io.Writer, level Level) *Logger {
	lv := &atomic.Int32{}
	lv.Store(int32(level))
	return &Logger{
		logger: log.New(out, "", 0), // No prefix, handled by format string
		level:  lv,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// With returns a child logger that tags each line with component.
func (l *Logger) With(component string) *Logger {
	p := component
	if l.prefix != "" {
		p = l.prefix + "." + component
	}
	return &Logger{logger: l.logger, level: l.level, prefix: p}
}

func (l *Logger) printf(lv Level, format string, v ...interface{}) {
	if l == nil || Level(l.level.Load()) > lv {
		return
	}
	head := lv.String() + ": "
	if l.prefix != "" {
		head += "[" + l.prefix + "] "
	}
	l.logger.Printf(head+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) Level() Level {
	return Level(l.level.Load())
}
