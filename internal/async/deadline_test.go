package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDeadline_SettlesBeforeDeadline(t *testing.T) {
	res := WithDeadline(context.Background(), time.Second, func(context.Context) (string, error) {
		return "copy", nil
	})

	require.True(t, res.Ok())
	assert.Equal(t, "copy", res.Value)
}

func TestWithDeadline_PropagatesOperationError(t *testing.T) {
	opErr := errors.New("upstream rejected")
	res := WithDeadline(context.Background(), time.Second, func(context.Context) (string, error) {
		return "", opErr
	})

	assert.False(t, res.Ok())
	assert.False(t, res.TimedOut)
	require.ErrorIs(t, res.Err, opErr)
}

func TestWithDeadline_TimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	res := WithDeadline(context.Background(), 10*time.Millisecond, func(context.Context) (string, error) {
		<-block
		return "late", nil
	})

	assert.True(t, res.TimedOut)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Value)
}

func TestWithDeadline_LateResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})

	res := WithDeadline(context.Background(), 10*time.Millisecond, func(context.Context) (string, error) {
		<-release
		return "late", nil
	})
	require.True(t, res.TimedOut)

	// The loser must be able to finish without anything receiving its result.
	release <- struct{}{}
}

func TestWithDeadline_ParentContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	defer close(block)

	res := WithDeadline(ctx, time.Second, func(context.Context) (string, error) {
		<-block
		return "", nil
	})

	assert.False(t, res.TimedOut)
	require.ErrorIs(t, res.Err, context.Canceled)
}
