package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Logger is a mock implementation of ports.Logger
type Logger struct {
	mock.Mock
}

func (m *Logger) Debug(msg any, args ...any) {
	m.Called(append([]any{msg}, args...)...)
}

func (m *Logger) Info(msg any, args ...any) {
	m.Called(append([]any{msg}, args...)...)
}

func (m *Logger) Warn(msg any, args ...any) {
	m.Called(append([]any{msg}, args...)...)
}

func (m *Logger) Error(msg any, args ...any) {
	m.Called(append([]any{msg}, args...)...)
}

func (m *Logger) DebugObject(prefix string, obj any) {
	m.Called(prefix, obj)
}

func (m *Logger) InfoObject(prefix string, obj any) {
	m.Called(prefix, obj)
}

func (m *Logger) WarnObject(prefix string, obj any) {
	m.Called(prefix, obj)
}

func (m *Logger) ErrorObject(prefix string, obj any) {
	m.Called(prefix, obj)
}
