package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"axiapac.com/timesheets/config"
	"axiapac.com/timesheets/security"
	"axiapac.com/timesheets/web/handlers/auth"
)

// Prints a session token for the configured user, e.g. for curl against a running server.
// Requires auth.signing_secret so the server accepts the token.
func main() {
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}
	if cfg.Auth.SigningSecret == "" {
		log.Fatal("[ERROR] AUTH_SIGNING_SECRET is not set")
	}
	secret, err := security.DecodeSecret(cfg.Auth.SigningSecret)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	token, err := security.CreateSessionToken(security.Identity{
		ID:    auth.UserID,
		Email: cfg.Auth.Email,
		Name:  cfg.Auth.Name,
	}, secret, *ttl)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Println(token)
}
