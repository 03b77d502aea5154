package signal_test

import (
	"context"
	"os"
	"testing"

	"github.com/gruntwork-io/hashbrute/internal/os/signal"
	"github.com/stretchr/testify/assert"
)

func TestContextCanceledCause(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(signal.NewContextCanceledCause(os.Interrupt))

	cause := context.Cause(ctx)

	assert.ErrorIs(t, cause, context.Canceled)
	assert.Equal(t, "context canceled: interrupted by interrupt", cause.Error())
	assert.NotEmpty(t, signal.InterruptSignals)
}
