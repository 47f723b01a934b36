package logger

import (
	"sync"
	"time"
)

// Config is the configuration shared by every Logger bound to the same Settings.
// Only Level can be overridden per Logger.
type Config struct {
	Level         Level  `json:"level"`
	OutputLevels  bool   `json:"output_levels"`
	LogTimestamps bool   `json:"log_timestamps"`
	Format        Format `json:"format"`
}

// Option changes one field of a Config.
type Option func(*Config)

func WithLevel(level Level) Option {
	return func(c *Config) { c.Level = level }
}

func WithOutputLevels(enabled bool) Option {
	return func(c *Config) { c.OutputLevels = enabled }
}

func WithLogTimestamps(enabled bool) Option {
	return func(c *Config) { c.LogTimestamps = enabled }
}

func WithFormat(format Format) Option {
	return func(c *Config) { c.Format = format }
}

// Settings is a live, shared logging configuration. Loggers keep a reference to it and
// read it on every call, so changes apply immediately to all of them.
//
// The zero value is not usable; construct with NewSettings. The environment is resolved
// lazily on first access and again after Reset.
type Settings struct {
	mu         sync.RWMutex
	resolved   bool
	resolve    func() Environment
	clock      func() time.Time
	env        Environment
	config     Config
	invocation Invocation
	sink       Sink
}

// NewSettings returns a Settings object that writes to the console.
func NewSettings() *Settings {
	return &Settings{
		resolve: ResolveEnvironment,
		clock:   time.Now,
		sink:    NewConsoleSink(),
	}
}

var defaultSettings = NewSettings()

// Default returns the process-wide Settings used by New and the package-level functions.
func Default() *Settings {
	return defaultSettings
}

// snapshot is a consistent view of Settings taken once per log call. now is filled in
// only after the message passes the threshold.
type snapshot struct {
	config     Config
	env        Environment
	invocation Invocation
	sink       Sink
	clock      func() time.Time
	now        time.Time
}

func (s *Settings) ensureResolved() {
	s.mu.RLock()
	resolved := s.resolved
	s.mu.RUnlock()
	if resolved {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resolved {
		s.resolveLocked()
	}
}

func (s *Settings) resolveLocked() {
	s.env = s.resolve()
	s.config = s.env.DefaultConfig()
	s.resolved = true
}

func (s *Settings) update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resolved {
		s.resolveLocked()
	}
	fn()
}

func (s *Settings) snapshot() snapshot {
	s.ensureResolved()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		config:     s.config,
		env:        s.env,
		invocation: s.invocation,
		sink:       s.sink,
		clock:      s.clock,
	}
}

// Initialize applies opts to the live configuration. Fields without an option keep their
// current value, so Initialize() with no options changes nothing.
func (s *Settings) Initialize(opts ...Option) {
	s.update(func() {
		for _, opt := range opts {
			opt(&s.config)
		}
	})
}

// Config returns a copy of the current configuration.
func (s *Settings) Config() Config {
	s.ensureResolved()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Environment returns the environment the defaults were derived from.
func (s *Settings) Environment() Environment {
	s.ensureResolved()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.env
}

func (s *Settings) SetLevel(level Level) {
	s.Initialize(WithLevel(level))
}

func (s *Settings) SetOutputLevels(enabled bool) {
	s.Initialize(WithOutputLevels(enabled))
}

func (s *Settings) SetLogTimestamps(enabled bool) {
	s.Initialize(WithLogTimestamps(enabled))
}

func (s *Settings) SetFormat(format Format) {
	s.Initialize(WithFormat(format))
}

// SetSink replaces the output channels. A nil sink discards everything.
func (s *Settings) SetSink(sink Sink) {
	if sink == nil {
		sink = NopSink{}
	}
	s.update(func() { s.sink = sink })
}

// Reset re-reads the environment and replaces the configuration with its defaults.
// The sink and invocation context are kept.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolveLocked()
}

// Initialize applies opts to the process-wide configuration.
func Initialize(opts ...Option) {
	defaultSettings.Initialize(opts...)
}

// GlobalConfig returns a copy of the process-wide configuration.
func GlobalConfig() Config {
	return defaultSettings.Config()
}

func SetGlobalLevel(level Level) {
	defaultSettings.SetLevel(level)
}

func SetOutputLevels(enabled bool) {
	defaultSettings.SetOutputLevels(enabled)
}

func SetLogTimestamps(enabled bool) {
	defaultSettings.SetLogTimestamps(enabled)
}

func SetFormat(format Format) {
	defaultSettings.SetFormat(format)
}

func SetSink(sink Sink) {
	defaultSettings.SetSink(sink)
}

// Reset re-resolves the process-wide configuration from the environment.
func Reset() {
	defaultSettings.Reset()
}
