package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockSink is a mock implementation of logger.Sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Debug(args ...any) {
	m.Called(args...)
}

func (m *MockSink) Info(args ...any) {
	m.Called(args...)
}

func (m *MockSink) Warn(args ...any) {
	m.Called(args...)
}

func (m *MockSink) Error(args ...any) {
	m.Called(args...)
}
