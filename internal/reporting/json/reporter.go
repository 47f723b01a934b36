package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olusolaa/lambda-logger/internal/core/ports"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

const ReporterTypeJSON = "json"

type Reporter struct {
	writer io.Writer
	logger ports.Logger
}

func NewReporter(w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		writer: w,
		logger: logger,
	}, nil
}

type jsonReport struct {
	Hosted      bool               `json:"hosted"`
	Environment logger.Environment `json:"environment"`
	Config      logger.Config      `json:"config"`
}

func (r *Reporter) Report(ctx context.Context, env logger.Environment, cfg logger.Config) error {
	if ctx.Err() != nil {
		r.logger.Warn("JSON report generation cancelled.")
		return ctx.Err()
	}

	report := jsonReport{
		Hosted:      env.Hosted(),
		Environment: env,
		Config:      cfg,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		r.logger.Error("Failed to encode JSON report", err)
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debug("JSON report successfully generated.")
	return nil
}
