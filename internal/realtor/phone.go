package realtor

import (
	"realtors/pkg/serrors"
	"regexp"
	"unicode/utf8"
)

// MinPhoneLength is the minimum number of characters of a phone number.
const MinPhoneLength = 10

// PhonePattern is the set of characters a phone number may consist of.
const PhonePattern = `^[0-9 \-+()]*$`

var phonePattern = regexp.MustCompile(PhonePattern) //nolint: gochecknoglobals

// ValidatePhone checks the phone rule: required, only digits, spaces, dashes,
// plus signs and parentheses, at least MinPhoneLength characters. The value is
// never normalized; what passes is stored verbatim.
func ValidatePhone(phone string) error {
	switch {
	case phone == "":
		return serrors.Invalid("phone", "The phone field is required.")
	case !phonePattern.MatchString(phone):
		return serrors.Invalid("phone", "The phone format is invalid.")
	case utf8.RuneCountInString(phone) < MinPhoneLength:
		return serrors.Invalid("phone", "The phone must be at least %d characters.", MinPhoneLength)
	}

	return nil
}
