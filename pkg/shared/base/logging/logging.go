// 指示: miu200521358
// Package logging は変換処理共通のロガーを提供する。
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Logger は書式付きログ出力の契約を表す。
type Logger struct {
	handler *slog.Logger
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   = NewLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
)

// NewLogger はslogバックエンドのロガーを生成する。
func NewLogger(handler *slog.Logger) *Logger {
	if handler == nil {
		return nil
	}
	return &Logger{handler: handler}
}

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替える。
func SetDefaultLogger(logger *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Info はINFOログを出力する。
func (l *Logger) Info(format string, params ...any) {
	if l == nil || l.handler == nil {
		return
	}
	l.handler.Info(fmt.Sprintf(format, params...))
}

// Debug はDEBUGログを出力する。
func (l *Logger) Debug(format string, params ...any) {
	if l == nil || l.handler == nil {
		return
	}
	l.handler.Debug(fmt.Sprintf(format, params...))
}

// Warn は警告ログを出力する。
func (l *Logger) Warn(format string, params ...any) {
	if l == nil || l.handler == nil {
		return
	}
	l.handler.Warn(fmt.Sprintf(format, params...))
}

// Error はエラーログを出力する。
func (l *Logger) Error(format string, params ...any) {
	if l == nil || l.handler == nil {
		return
	}
	l.handler.Error(fmt.Sprintf(format, params...))
}
