package uktag

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// numberRe matches numerals: signed, optionally currency-prefixed decimals
// with an optional range and percent/degree suffix, or a Roman numeral
// below one hundred. The Roman branch also matches the empty string, so
// IsNumber rejects empty input separately.
var numberRe = regexp.MustCompile(`^(?:[+-]?[€₴$]?[0-9]+(?:,[0-9]+)?(?:[-–—][0-9]+(?:,[0-9]+)?)?(?:%|°С?)?|(?:XC|XL|L?X{0,3})(?:IX|IV|V?I{0,3}))$`)

// dateRe matches DD.DD.DDDD.
var dateRe = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)

// IsNumber reports whether word is a numeral literal.
func IsNumber(word string) bool {
	return word != "" && numberRe.MatchString(word)
}

// IsDate reports whether word is a DD.DD.DDDD date literal.
func IsDate(word string) bool {
	return dateRe.MatchString(word)
}

// Lower lower-cases s with Ukrainian case mapping.
// A Caser is stateful, so one is created per call.
func Lower(s string) string {
	return cases.Lower(language.Ukrainian).String(s)
}

// startsUpper reports whether the first rune of s is an uppercase letter.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// runeAfter returns the rune that follows prefix in s, if s starts with prefix.
func runeAfter(s, prefix string) (rune, bool) {
	if !strings.HasPrefix(s, prefix) || len(s) == len(prefix) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[len(prefix):])
	return r, r != utf8.RuneError
}
