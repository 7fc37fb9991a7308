package dto

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validPassword enforces the registration password policy: 8-20 characters
// with at least one lowercase letter, one uppercase letter, one digit and
// one symbol.
func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("!@#$%^&*()_-+=[]{};:'\",<.>/?\\|`~", r):
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}
