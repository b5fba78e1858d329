package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogName = "app"

// InitLogger tees to stdout and a rotated <LogPath>/<Name>.log. The file is
// always JSON; stdout switches to the console encoder in debug mode.
func InitLogger(cfg AppConfig) (*zap.Logger, error) {
	name := cfg.Name
	if name == "" {
		name = defaultLogName
	}

	// Buat folder log jika belum ada
	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, err
		}
	}

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogPath, name+".log"),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig(false)), fileSink, level),
		zapcore.NewCore(consoleEncoder(cfg.Debug), zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("app", name)),
	), nil
}

func encoderConfig(debug bool) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	if debug {
		ec = zap.NewDevelopmentEncoderConfig()
	}
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.CallerKey = "caller"
	ec.EncodeCaller = zapcore.ShortCallerEncoder
	return ec
}

func consoleEncoder(debug bool) zapcore.Encoder {
	if debug {
		return zapcore.NewConsoleEncoder(encoderConfig(true))
	}
	return zapcore.NewJSONEncoder(encoderConfig(false))
}
