package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("cost must be created via NewCost")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copy_keeps_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(notConstructed))
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type quote struct {
		amount int
		guard  guard.ConstructorGuard
	}
	errQuote := errors.New("quote must be created via newQuote")
	newQuote := func(amount int) (quote, error) {
		if amount <= 0 {
			return quote{}, errors.New("amount must be positive")
		}
		return quote{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	q, err := newQuote(10)
	require.NoError(t, err)
	require.NoError(t, q.guard.Validate(errQuote))

	var zero quote
	assert.ErrorIs(t, zero.guard.Validate(errQuote), errQuote)

	_, err = newQuote(0)
	require.Error(t, err)
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})
	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}
	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
