package logger

import "sync/atomic"

// Options configures a Logger. A nil Level means the Logger follows the level of its
// Settings.
type Options struct {
	Category string
	Level    *Level
}

// Logger writes leveled messages for one category. Everything except the level threshold
// comes from the Settings it was created from, read fresh on every call.
type Logger struct {
	category string
	settings *Settings
	// level holds the override plus one; zero means no override.
	level atomic.Int32
}

// New returns a Logger for category bound to the process-wide Settings.
func New(category string) *Logger {
	return defaultSettings.New(category)
}

// NewWithOptions returns a Logger bound to the process-wide Settings.
func NewWithOptions(opts Options) *Logger {
	return defaultSettings.NewWithOptions(opts)
}

func (s *Settings) New(category string) *Logger {
	return s.NewWithOptions(Options{Category: category})
}

func (s *Settings) NewWithOptions(opts Options) *Logger {
	l := &Logger{category: opts.Category, settings: s}
	if opts.Level != nil {
		l.SetLevel(*opts.Level)
	}
	return l
}

func (l *Logger) Category() string {
	return l.category
}

// Level returns the effective threshold: the Logger's own override if set, otherwise the
// current level of its Settings.
func (l *Logger) Level() Level {
	if lvl, ok := l.override(); ok {
		return lvl
	}
	return l.settings.Config().Level
}

// SetLevel overrides the threshold for this Logger only. Out-of-range levels are clamped
// to DEBUG or NONE.
func (l *Logger) SetLevel(level Level) {
	switch {
	case level < LevelDebug:
		level = LevelDebug
	case level > LevelNone:
		level = LevelNone
	}
	l.level.Store(int32(level) + 1)
}

// ClearLevel drops the override so the Logger follows its Settings again.
func (l *Logger) ClearLevel() {
	l.level.Store(0)
}

func (l *Logger) override() (Level, bool) {
	v := l.level.Load()
	if v == 0 {
		return 0, false
	}
	return Level(v - 1), true
}

func (l *Logger) Debug(msg any, args ...any) { l.log(LevelDebug, msg, args) }
func (l *Logger) Info(msg any, args ...any)  { l.log(LevelInfo, msg, args) }
func (l *Logger) Warn(msg any, args ...any)  { l.log(LevelWarn, msg, args) }
func (l *Logger) Error(msg any, args ...any) { l.log(LevelError, msg, args) }

// DebugObject logs prefix followed by obj serialized as JSON: indented in FLAT format,
// compact in STRUCT format.
func (l *Logger) DebugObject(prefix string, obj any) { l.logObject(LevelDebug, prefix, obj) }
func (l *Logger) InfoObject(prefix string, obj any)  { l.logObject(LevelInfo, prefix, obj) }
func (l *Logger) WarnObject(prefix string, obj any)  { l.logObject(LevelWarn, prefix, obj) }
func (l *Logger) ErrorObject(prefix string, obj any) { l.logObject(LevelError, prefix, obj) }

func (l *Logger) log(level Level, msg any, args []any) {
	snap, ok := l.admit(level)
	if !ok {
		return
	}
	write := channel(snap.sink, level)
	if snap.config.Format == FormatStruct {
		write(renderStruct(snap, level, l.category, msg))
		return
	}
	write(renderFlat(snap, level, l.category, msg, args)...)
}

func (l *Logger) logObject(level Level, prefix string, obj any) {
	snap, ok := l.admit(level)
	if !ok {
		return
	}
	write := channel(snap.sink, level)
	if snap.config.Format == FormatStruct {
		write(renderStruct(snap, level, l.category, joinObject(prefix, serializeObject(obj, false))))
		return
	}
	write(renderFlat(snap, level, l.category, joinObject(prefix, serializeObject(obj, true)), nil)...)
}

// admit filters before any rendering so suppressed calls stay cheap.
func (l *Logger) admit(level Level) (snapshot, bool) {
	snap := l.settings.snapshot()
	threshold := snap.config.Level
	if lvl, ok := l.override(); ok {
		threshold = lvl
	}
	if !shouldLog(level, threshold) {
		return snapshot{}, false
	}
	snap.now = snap.clock()
	return snap, true
}
