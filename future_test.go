package banbridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_Await(t *testing.T) {
	future := NewFuture[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		future.Complete("done", nil)
	}()

	value, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)

	// Only the first completion counts.
	future.Complete("again", errors.New("ignored"))
	var blocking context.Context
	value, err = future.Await(blocking)
	require.NoError(t, err)
	assert.Equal(t, "done", value)
}

func TestFuture_AwaitCanceled(t *testing.T) {
	future := NewFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	value, err := future.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, value)
}

func TestCompletedFuture(t *testing.T) {
	errFailed := errors.New("failed")

	_, err := CompletedFuture(0, errFailed).Await(context.Background())
	assert.ErrorIs(t, err, errFailed)
}
