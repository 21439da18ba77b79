package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bishopxxx/Bishop-blog/internal/core/password"
)

func TestHashAndVerify(t *testing.T) {
	credential, err := password.Hash("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", credential)
	assert.True(t, password.Verify("p1", credential))
	assert.False(t, password.Verify("p2", credential))
	assert.False(t, password.Verify("", credential))
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same input")
	require.NoError(t, err)
	second, err := password.Hash("same input")
	require.NoError(t, err)

	// Per-call salt: equal inputs must not produce equal credentials.
	assert.NotEqual(t, first, second)
	assert.True(t, password.Verify("same input", first))
	assert.True(t, password.Verify("same input", second))
}
