package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterHasher_HashAndVerify(t *testing.T) {
	hasher := NewMasterHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$"), "bcrypt hash format")

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}

func TestMasterHasher_Hash_SaltedPerCall(t *testing.T) {
	hasher := NewMasterHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "fresh salt per hash")
	assert.True(t, hasher.Verify("same password", first))
	assert.True(t, hasher.Verify("same password", second))
}

func TestMasterHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewMasterHasher()

	assert.False(t, hasher.Verify("any password", ""))
	assert.False(t, hasher.Verify("any password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("any password", "$2a$12$truncated"))
}
