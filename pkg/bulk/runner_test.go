package bulk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CountsFailuresWithoutShortCircuit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	var seen []int

	res := Run(context.Background(), items, func(_ context.Context, item int) error {
		seen = append(seen, item)
		if item == 3 {
			return errors.New("upload failed")
		}
		return nil
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 5, res.Attempted)
	assert.Equal(t, 4, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)

	err := res.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialBatchFailure)

	var partial *PartialBatchFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 4, partial.SuccessCount)
	assert.Equal(t, 1, partial.FailureCount)
}

func TestRun_PanicCountsAsFailure(t *testing.T) {
	res := Run(context.Background(), []string{"a", "b", "c"}, func(_ context.Context, item string) error {
		if item == "b" {
			panic("boom")
		}
		return nil
	})

	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
}

func TestRun_AllSucceeded(t *testing.T) {
	res := Run(context.Background(), []int{1, 2}, func(context.Context, int) error { return nil })

	assert.Equal(t, 2, res.SuccessCount)
	assert.Zero(t, res.FailureCount)
	assert.NoError(t, res.Err())
}

func TestRun_Empty(t *testing.T) {
	res := Run[int](context.Background(), nil, func(context.Context, int) error { return nil })

	assert.Equal(t, Result{}, res)
	assert.NoError(t, res.Err())
}

func TestRun_CancelledContextStillCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Run(ctx, []int{1, 2, 3}, func(ctx context.Context, _ int) error {
		return ctx.Err()
	})

	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 3, res.FailureCount)
}
