//go:build unit
// +build unit

package sweep

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oqtopus-team/oqtopus-fidelity/core"
)

func TestNewExecutor(t *testing.T) {
	_, err := NewExecutor(0)
	assert.True(t, core.IsConfigurationError(err))

	x, err := NewExecutor(3)
	assert.Nil(t, err)
	assert.Equal(t, 3, x.Workers())
}

func TestExecutorMapKeepsOrder(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		x, err := NewExecutor(workers)
		assert.Nil(t, err)
		got, err := x.Map(context.Background(), "test", 200, func(i int) (float64, error) {
			return float64(i) * 0.5, nil
		})
		assert.Nil(t, err)
		assert.Len(t, got, 200)
		for i, v := range got {
			assert.Equal(t, float64(i)*0.5, v)
		}
	}
}

func TestExecutorMapFailsWhole(t *testing.T) {
	want := errors.New("bad point")
	for _, workers := range []int{1, 4} {
		x, err := NewExecutor(workers)
		assert.Nil(t, err)
		got, err := x.Map(context.Background(), "test", 50, func(i int) (float64, error) {
			if i == 7 {
				return 0, want
			}
			return 1, nil
		})
		assert.True(t, errors.Is(err, want))
		assert.Nil(t, got)
	}
}

func TestExecutorMapCancelled(t *testing.T) {
	for _, workers := range []int{1, 4} {
		x, err := NewExecutor(workers)
		assert.Nil(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		var calls int32
		got, err := x.Map(ctx, "test", 1000, func(i int) (float64, error) {
			if atomic.AddInt32(&calls, 1) == 5 {
				cancel()
			}
			return 1, nil
		})
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Nil(t, got)
		assert.Less(t, atomic.LoadInt32(&calls), int32(1000))
	}
}
