package logger

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Invocation identifies the Lambda invocation being handled. Its fields are added to
// STRUCT records when non-empty.
type Invocation struct {
	RequestID string `json:"aws_request_id,omitempty"`
	TraceID   string `json:"xray_trace_id,omitempty"`
}

// InvocationFromContext extracts the request id from a Lambda handler context. The
// runtime rewrites the trace id variable before every invocation, so it is read here
// rather than at environment resolution.
func InvocationFromContext(ctx context.Context) Invocation {
	inv := Invocation{TraceID: os.Getenv(EnvTraceID)}
	if ctx == nil {
		return inv
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc != nil {
		inv.RequestID = lc.AwsRequestID
	}
	return inv
}

// SetInvocation tags subsequent STRUCT records with the invocation found in ctx.
func (s *Settings) SetInvocation(ctx context.Context) {
	inv := InvocationFromContext(ctx)
	s.update(func() { s.invocation = inv })
}

func (s *Settings) ClearInvocation() {
	s.update(func() { s.invocation = Invocation{} })
}

// Invocation returns the invocation currently attached to records.
func (s *Settings) Invocation() Invocation {
	s.ensureResolved()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invocation
}

func SetInvocation(ctx context.Context) {
	defaultSettings.SetInvocation(ctx)
}

func ClearInvocation() {
	defaultSettings.ClearInvocation()
}
