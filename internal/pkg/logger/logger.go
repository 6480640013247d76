package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atapsolar/authhub/internal/pkg/models"
)

// ZapLogger is the application logger, structured JSON on stdout
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// InitZapLoggerFromConfig creates the application logger from configuration
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Logger.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)

	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", cfg.App.Name)),
	)

	logger := &ZapLogger{
		Logger: zapLogger,
		sugar:  zapLogger.Sugar(),
	}

	SetGlobalLogger(logger)
	return logger, nil
}

// Sugar returns the sugared logger for printf-style logging
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes any buffered log entries
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}
