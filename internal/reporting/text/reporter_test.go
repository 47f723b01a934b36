package text

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/lambda-logger/internal/core/ports/mocks"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

func TestReporter_Report(t *testing.T) {
	env := logger.Environment{
		FunctionName:    "orders",
		FunctionVersion: "7",
		Region:          "eu-west-1",
		LevelOverride:   "warn",
	}
	cfg := env.DefaultConfig()

	log := new(mocks.Logger)
	log.On("Debug", "environment report written", "hosted", true).Return().Once()

	var buf bytes.Buffer
	r, err := NewReporter(Config{NoColor: true}, &buf, log)
	require.NoError(t, err)
	require.NoError(t, r.Report(context.Background(), env, cfg))

	out := buf.String()
	assert.Contains(t, out, "hosted (AWS Lambda)")
	assert.Contains(t, out, "orders")
	assert.Contains(t, out, "eu-west-1")
	assert.Regexp(t, `Stage:\s+<unset>`, out)
	assert.Regexp(t, `Level:\s+WARN`, out)
	assert.Regexp(t, `Format:\s+STRUCT`, out)
	assert.Regexp(t, `LOG_LEVEL:\s+warn`, out)
	assert.NotContains(t, out, "LOG_FORMAT")
	log.AssertExpectations(t)
}

func TestReporter_LocalWithoutOverrides(t *testing.T) {
	log := new(mocks.Logger)
	log.On("Debug", "environment report written", "hosted", false).Return()

	var buf bytes.Buffer
	r, err := NewReporter(Config{NoColor: true}, &buf, log)
	require.NoError(t, err)
	require.NoError(t, r.Report(context.Background(), logger.Environment{}, logger.Environment{}.DefaultConfig()))

	assert.Regexp(t, `Mode:\s+local`, buf.String())
	assert.NotContains(t, buf.String(), "Environment Overrides")
}

func TestReporter_Cancelled(t *testing.T) {
	r, err := NewReporter(Config{NoColor: true}, &bytes.Buffer{}, new(mocks.Logger))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Report(ctx, logger.Environment{}, logger.Config{}), context.Canceled)
}
