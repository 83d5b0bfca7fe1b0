package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDo_ReturnsOnFirstSuccess(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), 3, Fixed(0), func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, val)
	require.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), 5, Fixed(0), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", val)
	require.Equal(t, 3, calls)
}

func TestDo_FailsPermanently(t *testing.T) {
	opErr := errors.New("boom")
	_, err := Do(context.Background(), 3, Fixed(0), func() (int, error) {
		return 0, opErr
	})
	var permErr *ErrFailedPermanently
	require.ErrorAs(t, err, &permErr)
	require.ErrorIs(t, err, opErr)
}

func TestDo_RequiresAttempts(t *testing.T) {
	_, err := Do(context.Background(), 0, Fixed(0), func() (int, error) {
		t.Fatal("op should not run")
		return 0, nil
	})
	require.Error(t, err)
}

func TestDo_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Do(ctx, 10, Fixed(time.Minute), func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("transient")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}

func TestDo0(t *testing.T) {
	calls := 0
	err := Do0(context.Background(), 2, Fixed(0), func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestExponentialStrategy_Grows(t *testing.T) {
	s := &ExponentialStrategy{Min: 100 * time.Millisecond, Max: time.Second}
	require.Less(t, s.Duration(0), s.Duration(3))
	require.LessOrEqual(t, s.Duration(10), time.Second)
}

func TestFixedStrategy(t *testing.T) {
	s := Fixed(250 * time.Millisecond)
	require.Equal(t, 250*time.Millisecond, s.Duration(0))
	require.Equal(t, 250*time.Millisecond, s.Duration(9))
}
