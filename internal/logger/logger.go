package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type implLogger struct {
	logger *log.Logger
	level  string
	json   bool
}

// New creates a new Logger writing to stdout. format is "text" or "json".
func New(level, format string) Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	l := &implLogger{
		level: strings.ToLower(level),
		json:  strings.EqualFold(format, "json"),
	}
	if l.json {
		l.logger = log.New(w, "", 0)
	} else {
		l.logger = log.New(w, "", log.LstdFlags)
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewWithWriter(io.Discard, "error", "text")
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	text := fmt.Sprintf(msg, args...)
	if !l.json {
		l.logger.Printf("[%s] %s", strings.ToUpper(level), text)
		return
	}
	line, err := json.Marshal(map[string]string{
		"time":  time.Now().Format(time.RFC3339),
		"level": level,
		"msg":   text,
	})
	if err != nil {
		l.logger.Printf(`{"level":"error","msg":"marshal log line: %v"}`, err)
		return
	}
	l.logger.Print(string(line))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write("error", msg, args...)
}
