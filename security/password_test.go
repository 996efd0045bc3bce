package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsVerify(t *testing.T) {
	plain := Credentials{Email: "test@example.com", Password: "password"}
	assert.True(t, plain.Verify("test@example.com", "password"))
	assert.False(t, plain.Verify("test@example.com", "Password"))
	assert.False(t, plain.Verify("other@example.com", "password"))
	assert.False(t, plain.Verify("", ""))

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	hashed := Credentials{Email: "test@example.com", Password: "password", PasswordHash: hash}
	assert.True(t, hashed.Verify("test@example.com", "s3cret"))
	assert.False(t, hashed.Verify("test@example.com", "password"))

	empty := Credentials{Email: "test@example.com"}
	assert.False(t, empty.Verify("test@example.com", ""))
}
