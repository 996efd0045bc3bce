package security

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single configured login.
type Credentials struct {
	Email        string
	Password     string
	PasswordHash string
}

// Verify checks email and password. A configured bcrypt hash takes precedence over the
// plain password.
func (c Credentials) Verify(email, password string) bool {
	if subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) != 1 {
		return false
	}
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return c.Password != "" && subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

// HashPassword produces a value for auth.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
