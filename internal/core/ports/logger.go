package ports

//go:generate mockery --name Logger --output ./mocks --outpkg mocks --case underscore

// Logger is the leveled logging surface used by the application layer.
// *logger.Logger satisfies it.
type Logger interface {
	Debug(msg any, args ...any)
	Info(msg any, args ...any)
	Warn(msg any, args ...any)
	Error(msg any, args ...any)

	DebugObject(prefix string, obj any)
	InfoObject(prefix string, obj any)
	WarnObject(prefix string, obj any)
	ErrorObject(prefix string, obj any)
}
