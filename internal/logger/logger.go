package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logger used across the service. Context is accepted
// on every call so request-scoped metadata can be attached later without
// changing call sites.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	rank   int
}

// New creates a Logger filtering below the given level. Unknown levels
// default to info.
func New(level string) Logger {
	rank, ok := levelRank[strings.ToLower(level)]
	if !ok {
		rank = levelRank["info"]
	}
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		rank:   rank,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	rank, ok := levelRank[level]
	if !ok {
		return true
	}
	return rank >= l.rank
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}
