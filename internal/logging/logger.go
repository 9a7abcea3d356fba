// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger emits structured audit records for authn/authz outcomes,
// keeping them separable from operational logs downstream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn(
		"authorization failure",
		zap.String("subject", subject),
		zap.String("action", action),
		zap.String("audit", "security"),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String("subject", subject),
		zap.String("reason", reason),
		zap.String("audit", "security"),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info(
		"system startup",
		zap.String("audit", "security"),
	)
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info(
		"system shutdown",
		zap.String("audit", "security"),
	)
}

// NewLogger creates a production zap logger at the given level. An
// unparseable level falls back to error to keep startup resilient.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l},
	}
}
