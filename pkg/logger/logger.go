package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log   atomic.Pointer[zap.SugaredLogger]
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	log.Store(zap.NewNop().Sugar())
}

// Init builds the process logger at info level. Call SetLevel once the
// configuration is loaded.
func Init() {
	config := zap.Config{
		Level:            level,
		Development:      os.Getenv("APP_ENV") == "development",
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := config.Build()
	if err != nil {
		// Fallback to example logger instead of panicking
		fallback := zap.NewExample().Sugar()
		log.Store(fallback)
		fallback.Warnw("Failed to initialize custom logger, using fallback", "error", err)
		return
	}

	log.Store(built.Sugar())
}

// Set installs l as the process logger. Tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	log.Store(l.Sugar())
}

// L returns the underlying structured logger.
func L() *zap.Logger {
	return log.Load().Desugar()
}

// SetLevel changes the level of the logger built by Init. Unknown names mean
// info.
func SetLevel(s string) {
	level.SetLevel(ParseLevel(s))
}

// Enabled reports whether entries at lvl pass the Init logger's level.
func Enabled(lvl zapcore.Level) bool {
	return level.Enabled(lvl)
}

func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debug(msg string, keysAndValues ...interface{}) {
	log.Load().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	log.Load().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	log.Load().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	log.Load().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, err error) {
	log.Load().Fatalw(msg, "error", err)
}

func Sync() {
	_ = log.Load().Sync()
}
