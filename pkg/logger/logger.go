package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 全局日志实例，Init 之前为 no-op
var Logger = zap.NewNop()

// Init 按配置构建全局 Logger
// output 支持 stdout、stderr、file 以及 both（同时写 stdout 和文件）
func Init(level, format, output, filePath string) error {
	core, err := newCore(level, format, output, filePath)
	if err != nil {
		return err
	}
	Logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

func newCore(level, format, output, filePath string) (zapcore.Core, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	ws, err := writeSyncer(output, filePath)
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(encoder(format), ws, lvl), nil
}

func encoder(format string) zapcore.Encoder {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func writeSyncer(output, filePath string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "file", "both":
		f, err := openLogFile(filePath)
		if err != nil {
			return nil, err
		}
		if output == "both" {
			return zapcore.NewMultiWriteSyncer(zapcore.Lock(os.Stdout), zapcore.AddSync(f)), nil
		}
		return zapcore.AddSync(f), nil
	default:
		return zapcore.Lock(os.Stdout), nil
	}
}

func openLogFile(path string) (io.Writer, error) {
	if path == "" {
		return nil, fmt.Errorf("log.file_path is required for file output")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Sync 刷新日志缓冲区
func Sync() {
	_ = Logger.Sync()
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

// Fatal 记录后退出进程
func Fatal(msg string, fields ...zap.Field) { Logger.Fatal(msg, fields...) }

// With 创建带固定字段的子 Logger
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}
