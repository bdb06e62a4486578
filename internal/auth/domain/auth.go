package domain

import (
	"net/mail"
	"strings"
)

const MinPasswordLength = 8

// ValidateRegistration checks sign-up fields after trimming.
func ValidateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return &InvalidArgumentsError{Msg: "username, email and password are required"}
	}

	if !isEmail(email) {
		return &InvalidArgumentsError{Msg: "email is not valid"}
	}

	return ValidatePassword(password)
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &InvalidArgumentsError{Msg: "password must be at least 8 characters"}
	}

	return nil
}

func isEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}
