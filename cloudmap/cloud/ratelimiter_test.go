package cloud

import (
	"context"
	"testing"
	"time"

	"github.com/aws/smithy-go/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	calls int
}

func (h *countingHandler) HandleInitialize(context.Context, middleware.InitializeInput) (middleware.InitializeOutput, middleware.Metadata, error) {
	h.calls++
	return middleware.InitializeOutput{}, middleware.Metadata{}, nil
}

func TestRateLimiterPassesThroughWithinBurst(t *testing.T) {
	rl := newRateLimiter(600)
	handler := &countingHandler{}

	start := time.Now()
	for i := 0; i < 5; i++ {
		_, _, err := rl.HandleInitialize(context.Background(), middleware.InitializeInput{}, handler)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, handler.calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRateLimiterInstalls(t *testing.T) {
	rl := newRateLimiter(defaultRequestsPerMinute)
	stack := middleware.NewStack("test", nil)
	require.NoError(t, rl.Install(stack))
	assert.Contains(t, stack.Initialize.List(), rl.ID())
}

func TestRateLimiterCancelledContext(t *testing.T) {
	// A tiny limit forces a delay so the cancelled context path is taken.
	rl := newRateLimiter(60)
	handler := &countingHandler{}

	ctx, cancel := context.WithCancel(context.Background())
	_, _, err := rl.HandleInitialize(ctx, middleware.InitializeInput{}, handler)
	require.NoError(t, err)

	cancel()
	for i := 0; i < 10; i++ {
		if _, _, err = rl.HandleInitialize(ctx, middleware.InitializeInput{}, handler); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, context.Canceled)
}
