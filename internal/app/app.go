package app

import (
	"context"
	"fmt"

	"github.com/olusolaa/lambda-logger/internal/core/ports"
	apperrors "github.com/olusolaa/lambda-logger/internal/errors"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

// LoggerFactory returns the logger a request is written through.
type LoggerFactory func(category string) ports.Logger

// Application turns CLI requests into logger calls.
type Application struct {
	Logger    ports.Logger
	Reporter  ports.Reporter
	Settings  *logger.Settings
	NewLogger LoggerFactory
}

// EmitRequest is one leveled call. Object requests use the Object variant with Prefix
// and ignore Message and Args.
type EmitRequest struct {
	Level    logger.Level
	Category string
	Message  string
	Args     []any

	IsObject bool
	Prefix   string
	Object   any
}

// NewApplication creates a new application instance
func NewApplication(settings *logger.Settings, reporter ports.Reporter, diagnostics ports.Logger) *Application {
	return &Application{
		Logger:   diagnostics,
		Reporter: reporter,
		Settings: settings,
		NewLogger: func(category string) ports.Logger {
			return settings.New(category)
		},
	}
}

// Emit writes a single message.
func (a *Application) Emit(ctx context.Context, req EmitRequest) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	l := a.NewLogger(req.Category)
	write, writeObject, err := methodsFor(l, req.Level)
	if err != nil {
		return err
	}

	if req.IsObject {
		a.Logger.Debug("emitting object", req.Level, req.Category)
		writeObject(req.Prefix, req.Object)
		return nil
	}
	a.Logger.Debug("emitting message", req.Level, req.Category, len(req.Args))
	write(req.Message, req.Args...)
	return nil
}

func methodsFor(l ports.Logger, level logger.Level) (func(any, ...any), func(string, any), error) {
	switch level {
	case logger.LevelDebug:
		return l.Debug, l.DebugObject, nil
	case logger.LevelInfo:
		return l.Info, l.InfoObject, nil
	case logger.LevelWarn:
		return l.Warn, l.WarnObject, nil
	case logger.LevelError:
		return l.Error, l.ErrorObject, nil
	default:
		return nil, nil, apperrors.NewUserFacing(apperrors.CodeInvalidArgument,
			fmt.Sprintf("cannot emit a message at level %s", level),
			"Use one of debug, info, warn or error.")
	}
}

// Describe reports the resolved environment and effective configuration.
func (a *Application) Describe(ctx context.Context) error {
	err := a.Reporter.Report(ctx, a.Settings.Environment(), a.Settings.Config())
	if err != nil {
		a.Logger.Error("environment report failed", err)
		return apperrors.Wrap(err, apperrors.CodeReportError, "failed to write environment report")
	}
	return nil
}
