package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("pizza123")
	require.NoError(t, err)
	assert.NotEqual(t, "pizza123", h)

	assert.True(t, CheckPassword(h, "pizza123"))
	assert.False(t, CheckPassword(h, "pizza124"))
	assert.False(t, CheckPassword("not-a-hash", "pizza123"))
}
