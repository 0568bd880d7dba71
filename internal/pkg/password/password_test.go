package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.True(t, Verify("secret123", hashed))
	assert.False(t, Verify("wrong-password", hashed))
	assert.False(t, Verify("", hashed))
}

func TestHashProducesDistinctSalts(t *testing.T) {
	first, err := Hash("secret123")
	require.NoError(t, err)

	second, err := Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("secret123", first))
	assert.True(t, Verify("secret123", second))
}
