package validator

import (
	"regexp"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	maxCheetLen   = 280
	maxMessageLen = 2000
)

func ValidateRegister(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	validatePassword(password, errs)

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateCheet(text string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(text) == "" {
		errs.Add("text", "Cheet text is required")
	} else if len(text) > maxCheetLen {
		errs.Add("text", "Cheet text is too long")
	}

	return errs
}

func ValidateReply(text string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(text) == "" {
		errs.Add("text", "Reply text is required")
	} else if len(text) > maxCheetLen {
		errs.Add("text", "Reply text is too long")
	}

	return errs
}

func ValidateMessage(text string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(text) == "" {
		errs.Add("text", "Message text is required")
	} else if len(text) > maxMessageLen {
		errs.Add("text", "Message text is too long")
	}

	return errs
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		errs.Add("password", "Password must contain at least one uppercase letter, one lowercase letter and one number")
	}
}
