package validators

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordAlphabet is the only set of characters a password may contain.
var passwordAlphabet = regexp.MustCompile(`^[a-zA-Z\d@$!%*?&]{8,}$`)

const passwordSpecials = "@$!%*?&"

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s has at least 8 characters from the
// allowed alphabet, including a lowercase letter, an uppercase letter and a
// digit.
func IsValidPassword(s string) bool {
	if !passwordAlphabet.MatchString(s) {
		return false
	}

	return strings.ContainsFunc(s, isLower) &&
		strings.ContainsFunc(s, isUpper) &&
		strings.ContainsFunc(s, isDigit)
}

// Strength grades a password for the signup meter.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	default:
		return ""
	}
}

// PasswordStrength scores one point each for length >= 8, a lowercase
// letter, an uppercase letter, a digit and a special character. Fewer than
// 3 points is weak, fewer than 5 medium, 5 strong. An empty password has no
// strength.
func PasswordStrength(s string) Strength {
	if s == "" {
		return StrengthNone
	}

	score := 0
	if len(s) >= 8 {
		score++
	}
	if strings.ContainsFunc(s, isLower) {
		score++
	}
	if strings.ContainsFunc(s, isUpper) {
		score++
	}
	if strings.ContainsFunc(s, isDigit) {
		score++
	}
	if strings.ContainsAny(s, passwordSpecials) {
		score++
	}

	switch {
	case score < 3:
		return StrengthWeak
	case score < 5:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
