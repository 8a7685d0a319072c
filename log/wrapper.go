package log

import (
	"go.uber.org/zap/zapcore"
)

// Wrapper is a simple wrapper of a logging function.
//
// Packages that only log on rare occasions (for example randbp when it cannot
// read from the system entropy source) take a Wrapper,
// so callers and tests can redirect or silence them.
type Wrapper func(msg string)

// NopWrapper is a Wrapper implementation that does nothing.
func NopWrapper(msg string) {}

// ZapWrapper wraps the global zap logger into a Wrapper.
//
// The global logger is looked up on every call,
// so a Wrapper created before InitLogger still logs to the new logger.
func ZapWrapper(logLevel zapcore.Level) Wrapper {
	return func(msg string) {
		switch logLevel {
		default:
			// for unknown values, fallback to info level.
			fallthrough
		case zapcore.InfoLevel:
			logger.Info(msg)
		case zapcore.DebugLevel:
			logger.Debug(msg)
		case zapcore.WarnLevel:
			logger.Warn(msg)
		case zapcore.ErrorLevel:
			logger.Error(msg)
		case zapcore.PanicLevel:
			logger.Panic(msg)
		case zapcore.FatalLevel:
			logger.Fatal(msg)
		case ZapNopLevel:
			// do nothing
		}
	}
}
