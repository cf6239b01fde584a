//go:build unit

package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nft-launchpad/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Do(t *testing.T) {
	t.Run("succeeds on first attempt without delay", func(t *testing.T) {
		calls := 0
		p := retry.Fixed(3, time.Hour)
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries up to max attempts and returns last error", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("quote endpoint down")
		p := retry.Fixed(3, time.Millisecond)
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		p := retry.Fixed(5, time.Millisecond)
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops immediately on non-retryable error", func(t *testing.T) {
		calls := 0
		fatal := errors.New("fatal")
		p := retry.Policy{
			MaxAttempts: 5,
			BaseDelay:   time.Millisecond,
			Retryable:   func(err error) bool { return !errors.Is(err, fatal) },
		}
		err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return fatal
		})
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("honors context cancellation between attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		p := retry.Fixed(3, time.Second)
		calls := 0
		err := p.Do(ctx, func(context.Context) error {
			calls++
			cancel()
			return errors.New("transient")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero max attempts still runs once", func(t *testing.T) {
		calls := 0
		err := retry.Policy{}.Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
