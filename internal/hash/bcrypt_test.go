package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_Hash(t *testing.T) {
	h := NewBcrypt()

	first, err := h.Hash("p")
	require.NoError(t, err)
	second, err := h.Hash("p")
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, "p", first)
	assert.NotEqual(t, first, second, "equal secrets must produce different digests")
}

func TestBcrypt_Verify(t *testing.T) {
	h := NewBcrypt()

	digest, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, h.Verify("correct horse battery staple", digest))
	assert.False(t, h.Verify("wrong password", digest))
	assert.False(t, h.Verify("correct horse battery staple", "not a digest"))
}
