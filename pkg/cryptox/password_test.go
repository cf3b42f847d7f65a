package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), hash)

	require.NoError(t, VerifyPassword("hunter2hunter2", hash))
	require.Error(t, VerifyPassword("hunter2hunter3", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh salt per hash")
}

func TestVerifyPasswordRejectsMangledHashes(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	for _, bad := range []string{
		"",
		"not-a-hash",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		strings.Replace(hash, "argon2id", "argon2i", 1),
		strings.Replace(hash, "v=19", "v=18", 1),
	} {
		assert.Error(t, VerifyPassword("hunter2hunter2", bad), bad)
	}
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken(TokenSize128)
	require.NoError(t, err)
	b, err := GenerateToken(TokenSize128)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+", "url-safe alphabet")
	assert.NotContains(t, a, "/")

	long, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	assert.Greater(t, len(long), len(a))
}
