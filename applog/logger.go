package applog

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the singleton. Obtain it with Instance; do not construct it.
type Logger struct {
	id        string
	createdAt time.Time
	zl        *zap.Logger
	count     atomic.Int64
}

var (
	once     sync.Once
	instance *Logger

	// mu guards pending and created; Init and the first Instance call
	// both take it so configuration cannot slip in after creation.
	mu      sync.Mutex
	pending = DefaultConfig()
	created bool
)

// Init stores cfg for the lazily created instance. It may be called any
// number of times before the first Instance call (last call wins) and fails
// with ErrAlreadyInitialized afterwards.
func Init(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if created {
		return ErrAlreadyInitialized
	}
	pending = cfg
	return nil
}

// Instance returns the process-wide Logger, creating it on first call.
func Instance() *Logger {
	once.Do(func() {
		mu.Lock()
		cfg := pending
		created = true
		mu.Unlock()
		instance = newLogger(cfg)
	})
	return instance
}

// newLogger builds the zap core for cfg. cfg was validated by Init or is
// DefaultConfig, so level errors cannot occur here.
func newLogger(cfg Config) *Logger {
	lvl, _ := cfg.level()

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == FormatConsole {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{
		id:        uuid.NewString(),
		createdAt: time.Now(),
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), lvl)
	l.zl = zap.New(core).With(zap.String("logger_id", l.id))
	return l
}

// ID identifies this instance; every caller of Instance sees the same ID.
func (l *Logger) ID() string { return l.id }

// CreatedAt is the moment the instance was created.
func (l *Logger) CreatedAt() time.Time { return l.createdAt }

// Count returns how many messages were submitted through this Logger,
// regardless of level filtering.
func (l *Logger) Count() int64 { return l.count.Load() }

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.count.Add(1)
	l.zl.Debug(msg, fields...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.count.Add(1)
	l.zl.Info(msg, fields...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.count.Add(1)
	l.zl.Warn(msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.count.Add(1)
	l.zl.Error(msg, fields...)
}

// Named returns a child zap logger for a subsystem. Messages written to it
// are not counted.
func (l *Logger) Named(name string) *zap.Logger { return l.zl.Named(name) }

// Sync flushes buffered output.
func (l *Logger) Sync() error { return l.zl.Sync() }
