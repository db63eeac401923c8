package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
}

// newLogger constructs a logger at the named level. If filename != "", logs
// are written to a rotated file there instead of stderr.
func newLogger(level, filename string) (*zap.Logger, error) {
	zapLevel, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, fmt.Errorf("illegal log level: %s", level)
	}
	ws := zapcore.AddSync(os.Stderr)
	if filename != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10, // megabytes
			MaxAge:     30, // days
			MaxBackups: 7,
			LocalTime:  true,
		})
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, zapLevel)
	return zap.New(core), nil
}
