package security

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken(Identity{Email: "test@example.com", Name: "Test"}, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test", claims.Name)
	assert.Equal(t, "test@example.com", claims.Subject)
}

func TestParseSessionTokenRejects(t *testing.T) {
	expired, err := CreateSessionToken(Identity{Email: "a@b.c"}, testSecret, -time.Minute)
	require.NoError(t, err)

	good, err := CreateSessionToken(Identity{Email: "a@b.c"}, testSecret, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": Issuer, "aud": Audience, "exp": time.Now().Add(time.Hour).Unix()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "other", "aud": Audience, "exp": time.Now().Add(time.Hour).Unix()})
	otherIssuer, err := foreign.SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"Expired", expired, testSecret},
		{"Wrong secret", good, []byte("another-secret")},
		{"Unsigned", unsigned, testSecret},
		{"Other issuer", otherIssuer, testSecret},
		{"Garbage", "not.a.jwt", testSecret},
		{"Empty", "", testSecret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestDecodeSecret(t *testing.T) {
	secret, err := DecodeSecret(base64.StdEncoding.EncodeToString(testSecret))
	require.NoError(t, err)
	assert.Equal(t, testSecret, secret)

	_, err = DecodeSecret("%%%")
	assert.Error(t, err)
	_, err = DecodeSecret("")
	assert.Error(t, err)
}
