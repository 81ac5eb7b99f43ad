package cloud

import (
	"context"
	"time"

	"github.com/aws/smithy-go/middleware"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"golang.org/x/time/rate"
)

// Cloud Map throttles per account; pace requests client-side so a refresh of
// many resources does not trip the server-side limiter.
const (
	defaultRequestsPerMinute = 120

	limitPeriod = 60.0
	burstPeriod = 10.0
)

type rateLimiter struct {
	limiter *rate.Limiter
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(limit/limitPeriod), limit/burstPeriod),
	}
}

// Install adds the limiter to the front of a client's middleware stack.
func (r *rateLimiter) Install(stack *middleware.Stack) error {
	return stack.Initialize.Add(r, middleware.Before)
}

// ID identifies the middleware within a smithy stack.
func (*rateLimiter) ID() string {
	return "CloudMapRateLimiter"
}

// HandleInitialize delays the outgoing request until the limiter admits it.
func (r *rateLimiter) HandleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (middleware.InitializeOutput, middleware.Metadata, error) {
	res := r.limiter.Reserve()
	if delay := res.Delay(); delay > 0 {
		tflog.Debug(ctx, "throttling Cloud Map request", map[string]any{
			"delay": delay.String(),
		})
		sleeper := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			if !sleeper.Stop() {
				<-sleeper.C
			}
			res.Cancel()
			return middleware.InitializeOutput{}, middleware.Metadata{}, ctx.Err()
		case <-sleeper.C:
		}
	}
	return next.HandleInitialize(ctx, in)
}
