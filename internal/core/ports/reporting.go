package ports

import (
	"context"

	"github.com/olusolaa/lambda-logger/pkg/logger"
)

// Reporter describes the resolved logging environment to the user.
type Reporter interface {
	Report(ctx context.Context, env logger.Environment, cfg logger.Config) error
}
