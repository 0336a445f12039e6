// Package logger builds the zap loggers shared by the api, the messaging
// consumer and the cli.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

// New constructs a Sugared Logger that writes to stdout and
// provides human-readable timestamps.
func New(service string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

// NewRotating works like New but also tees every entry into a size rotated file.
func NewRotating(service, file string) (*zap.SugaredLogger, error) {
	if file == "" {
		return New(service)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	rotate := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    20, // megabytes
		MaxBackups: 2,
		MaxAge:     10, // days
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotate), level),
	)

	return zap.New(core).With(zap.String("service", service)).Sugar(), nil
}
