package ids //nolint:testpackage // test package

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInvocationId(t *testing.T) {
	t.Parallel()

	first := NewInvocationId()
	second := NewInvocationId()

	require.NotEmpty(t, first.String())
	require.NotEqual(t, first, second)
	require.Equal(t, strings.ToLower(first.String()), first.String())
}
