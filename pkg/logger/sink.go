package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/olusolaa/lambda-logger/pkg/convert"
)

// Sink receives rendered messages, one channel per severity. FLAT messages arrive as
// several tokens, STRUCT messages as a single string.
type Sink interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// ConsoleSink prints debug and info messages to Out and warnings and errors to Err.
// Tokens are joined by spaces and non-string tokens are printed with fmt's %v.
type ConsoleSink struct {
	mu  sync.Mutex
	Out io.Writer
	Err io.Writer
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{Out: os.Stdout, Err: os.Stderr}
}

func (c *ConsoleSink) Debug(args ...any) { c.write(c.Out, args) }
func (c *ConsoleSink) Info(args ...any)  { c.write(c.Out, args) }
func (c *ConsoleSink) Warn(args ...any)  { c.write(c.Err, args) }
func (c *ConsoleSink) Error(args ...any) { c.write(c.Err, args) }

func (c *ConsoleSink) write(w io.Writer, args []any) {
	if w == nil {
		return
	}
	args = printable(args)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(w, args...)
}

// printable replaces self-referential tokens, which fmt cannot print, with their type.
// args is copied only when a token has to change.
func printable(args []any) []any {
	var out []any
	for i, a := range args {
		if !convert.HasCycle(a) {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i] = fmt.Sprintf("<%T: cyclic value>", a)
	}
	if out == nil {
		return args
	}
	return out
}

// NopSink discards all messages.
type NopSink struct{}

func (NopSink) Debug(...any) {}
func (NopSink) Info(...any)  {}
func (NopSink) Warn(...any)  {}
func (NopSink) Error(...any) {}

// channel picks the sink method for a message level.
func channel(sink Sink, level Level) func(...any) {
	switch level {
	case LevelDebug:
		return sink.Debug
	case LevelInfo:
		return sink.Info
	case LevelWarn:
		return sink.Warn
	default:
		return sink.Error
	}
}
