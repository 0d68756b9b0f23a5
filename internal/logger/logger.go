// internal/logger/logger.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level zap logger. Defaults to a nop logger so library code and
// tests can log before Init runs.
var zapLog = zap.NewNop()

// Init builds the process logger at the given level. Logs go to stderr so
// stdout stays machine-readable (TSV / summary).
func Init(level zapcore.Level) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000")
	encoderConfig.StacktraceKey = ""
	config.EncoderConfig = encoderConfig

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zapLog = l
	return nil
}

func Info(message string, fields ...zap.Field)  { zapLog.Info(message, fields...) }
func Warn(message string, fields ...zap.Field)  { zapLog.Warn(message, fields...) }
func Debug(message string, fields ...zap.Field) { zapLog.Debug(message, fields...) }
func Error(message string, fields ...zap.Field) { zapLog.Error(message, fields...) }

// Sync flushes any buffered log entries.
func Sync() error { return zapLog.Sync() }
