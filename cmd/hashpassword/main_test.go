package main

import (
	"strings"
	"testing"

	"axiapac.com/timesheets/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPassword(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
		wantErr  bool
	}{
		{"Argument", []string{"s3cret"}, "ignored\n", "s3cret", false},
		{"Stdin line", nil, "s3cret\n", "s3cret", false},
		{"Stdin without newline", nil, "s3cret", "s3cret", false},
		{"Windows line ending", nil, "s3cret\r\n", "s3cret", false},
		{"Empty", nil, "\n", "", true},
		{"Empty argument", []string{""}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readPassword(tt.args, strings.NewReader(tt.stdin))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHashVerifiesAsConfiguredPassword(t *testing.T) {
	password, err := readPassword(nil, strings.NewReader("s3cret\n"))
	require.NoError(t, err)
	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	creds := security.Credentials{Email: "test@example.com", PasswordHash: hash}
	assert.True(t, creds.Verify("test@example.com", "s3cret"))
}
