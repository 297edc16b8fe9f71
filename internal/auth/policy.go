package auth

import "unicode"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// ValidatePassword checks a registration password against the account
// password policy. It returns one description per violated rule, suitable
// for returning to the caller as a structured error list. An empty slice
// means the password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < MinPasswordLength {
		errs = append(errs, "Passwords must be at least 6 characters.")
	}

	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	if !hasDigit {
		errs = append(errs, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		errs = append(errs, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		errs = append(errs, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	if !hasSymbol {
		errs = append(errs, "Passwords must have at least one non alphanumeric character.")
	}

	return errs
}
