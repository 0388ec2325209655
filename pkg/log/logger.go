// Package log builds the application logger. Every record is emitted under
// the "AWSGetLogs" channel so operators can filter them from command output.
package log

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Channel is the logger name used for every application record.
const Channel = "AWSGetLogs"

type Options struct {
	// if we output to stdout
	Stdout bool
	// Path of the file, if present log to it
	Path string
	// What level to log
	Level string
}

// Configure builds the logger from the CLI options. When neither a path nor
// stdout is requested the records are discarded, keeping command output clean.
func Configure(options *Options) (*zap.Logger, error) {
	var writer zapcore.WriteSyncer

	if options.Path != "" {
		logfile, err := os.OpenFile(options.Path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			return nil, err
		}
		if options.Stdout {
			writer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(logfile), zapcore.AddSync(os.Stdout))
		} else {
			writer = zapcore.AddSync(logfile)
		}
	} else if options.Stdout {
		writer = zapcore.AddSync(os.Stdout)
	} else {
		writer = zapcore.AddSync(io.Discard)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), writer, ParseLevel(options.Level))

	return zap.New(core).Named(Channel), nil
}

// ParseLevel maps the CLI level names onto zap levels. TRACE maps to DEBUG,
// unknown values default to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
