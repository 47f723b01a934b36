package logger

import (
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC)

var hostedEnv = Environment{
	FunctionName:    "unitTest",
	FunctionVersion: "2",
	Region:          "us-test-1",
	Stage:           "test",
}

type sinkCall struct {
	channel string
	args    []any
}

type recordingSink struct {
	mu    sync.Mutex
	calls []sinkCall
}

func (r *recordingSink) record(channel string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, sinkCall{channel: channel, args: args})
}

func (r *recordingSink) Debug(args ...any) { r.record("debug", args) }
func (r *recordingSink) Info(args ...any)  { r.record("info", args) }
func (r *recordingSink) Warn(args ...any)  { r.record("warn", args) }
func (r *recordingSink) Error(args ...any) { r.record("error", args) }

func (r *recordingSink) Calls() []sinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sinkCall(nil), r.calls...)
}

// newTestSettings returns Settings resolved from env, with a fixed clock and a recording sink.
func newTestSettings(t *testing.T, env Environment, opts ...Option) (*Settings, *recordingSink) {
	t.Helper()
	s := NewSettings()
	s.resolve = func() Environment { return env }
	s.clock = func() time.Time { return fixedTime }
	sink := &recordingSink{}
	s.SetSink(sink)
	s.Initialize(opts...)
	return s, sink
}

// cloudWatchOptions mirrors a hosted process that kept FLAT output.
func cloudWatchOptions() []Option {
	return []Option{
		WithLevel(LevelDebug),
		WithOutputLevels(false),
		WithLogTimestamps(false),
		WithFormat(FormatFlat),
	}
}

func localOptions() []Option {
	return []Option{
		WithLevel(LevelDebug),
		WithOutputLevels(true),
		WithLogTimestamps(true),
		WithFormat(FormatFlat),
	}
}

// clearLambdaEnv blanks every variable ResolveEnvironment reads and points the shared AWS
// config at a missing file, so host settings do not leak in.
func clearLambdaEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		EnvFunctionName, EnvFunctionVersion, EnvRegion, EnvDefaultRegion, EnvTraceID,
		EnvLogLevel, EnvLogFormat, EnvTimestamps, EnvOutputLevels,
	}
	keys = append(keys, StageEnvKeys...)
	for _, k := range keys {
		t.Setenv(k, "")
	}
	t.Setenv(EnvProfile, "")
	t.Setenv("AWS_DEFAULT_PROFILE", "")
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing-config"))
}
