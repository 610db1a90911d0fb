package safecall_test

import (
	"testing"

	"github.com/safecall-io/safecall"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/require"
)

func TestCatcherKeepsFirstPanic(t *testing.T) {
	t.Parallel()

	var c safecall.Catcher

	c.Try(func() { panic("first") })
	c.Try(func() { panic("second") })

	require.NotNil(t, c.Recovered())
	require.Equal(t, "first", c.Recovered().Description)
}

func TestCatcherNothingRecovered(t *testing.T) {
	t.Parallel()

	var c safecall.Catcher

	c.Try(func() {})

	require.Nil(t, c.Recovered())
	require.NotPanics(t, c.Repanic)
}

func TestCatcherRepanic(t *testing.T) {
	t.Parallel()

	var c safecall.Catcher
	c.Try(func() { panic("boom") })

	var slot safecall.Error
	ok := safecall.Execute(c.Repanic, &slot)

	require.False(t, ok)
	require.Equal(t, "*safecall.Error", slot.Category)
	require.Contains(t, slot.Description, "boom")
}

func TestCatcherConcurrent(t *testing.T) {
	t.Parallel()

	var c safecall.Catcher

	p := pool.New().WithMaxGoroutines(8)
	for n := 0; n < 32; n++ {
		p.Go(func() {
			c.Try(func() { panic("racing") })
		})
	}
	p.Wait()

	require.NotNil(t, c.Recovered())
	require.Equal(t, "racing", c.Recovered().Description)
}
