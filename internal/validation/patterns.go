package validation

import "regexp"

var (
	// zeroTo9999 accepts a number between 0 and 9999 with up to two
	// decimals, or the empty string.
	zeroTo9999 = regexp.MustCompile(`^(|0|0\.\d{0,2}|[1-9]\d{0,3}(\.\d{0,2})?)$`)

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	oneUpper   = regexp.MustCompile(`[A-Z]`)
	oneLower   = regexp.MustCompile(`[a-z]`)
	oneDigit   = regexp.MustCompile(`[0-9]`)
	oneSpecial = regexp.MustCompile(`[@$!%*#?&]`)
)

// PasswordMessage explains why a password was rejected, empty if it is
// acceptable.
func PasswordMessage(pw string) string {
	switch {
	case len(pw) < 8:
		return "minimum eight characters"
	case len(pw) > 255:
		return "maximum 255 characters"
	case !oneUpper.MatchString(pw):
		return "minimum one upper case letter"
	case !oneLower.MatchString(pw):
		return "minimum one lower case letter"
	case !oneDigit.MatchString(pw):
		return "minimum one digit"
	case !oneSpecial.MatchString(pw):
		return "minimum one special character"
	}
	return ""
}
