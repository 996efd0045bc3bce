package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"axiapac.com/timesheets/security"
)

// Prints a bcrypt hash for auth.password_hash / AUTH_PASSWORD_HASH.
// The password is the first argument, or read from stdin so it stays out of shell history.
//
//	go run ./cmd/hashpassword 's3cret'
//	echo 's3cret' | go run ./cmd/hashpassword
func main() {
	password, err := readPassword(os.Args[1:], os.Stdin)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Println(hash)
}

func readPassword(args []string, stdin io.Reader) (string, error) {
	password := ""
	if len(args) > 0 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
