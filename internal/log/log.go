package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "UNKNOWN"
}

// LevelFromString parses a level name case-insensitively. Unknown names
// fall back to LevelInfo so a typo in a config file doesn't flood the output.
func LevelFromString(s string) Level {
	for lvl, name := range levelNames {
		if strings.EqualFold(s, name) {
			return lvl
		}
	}
	return LevelInfo
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ltime|log.Lmicroseconds),
		level:  level,
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) printf(lvl Level, format string, v ...interface{}) {
	if l.level > lvl {
		return
	}
	l.logger.Printf(lvl.String()+": "+format, v...)
}

func (l *Logger) SetLevel(level Level) { l.level = level }
func (l *Logger) Level() Level         { return l.level }
