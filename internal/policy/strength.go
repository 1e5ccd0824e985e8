package policy

import (
	"strings"
	"unicode"

	"passvault/models"
)

// sequentialPatterns are keyboard/counting runs that make a password weak
// regardless of everything else it gets right.
var sequentialPatterns = []string{"1234", "abcd", "qwerty"}

// longPasswordThreshold is the length at which a password is judged mostly
// on sheer size: dictionary checks are skipped and missing character classes
// only soften the rating instead of capping it at Medium.
const longPasswordThreshold = 25

// Classify evaluates password strength as an ordered predicate pipeline;
// the first matching rule wins:
//
//  1. shorter than 8 characters → Weak
//  2. 25 characters or longer → rated by missing character classes:
//     at most one missing → Very Strong, two missing → Strong, else Medium
//  3. contains a sequential run ("1234", "abcd", "qwerty", case-insensitive)
//     anywhere → Weak
//  4. contains a common dictionary word, plainly or in leet-speak → Weak
//  5. missing any of upper case, lower case, digit, symbol → Medium
//  6. 12 characters or longer → Very Strong, else Strong
func Classify(password string) models.Strength {
	if len(password) < 8 {
		return models.StrengthWeak
	}

	if len(password) >= longPasswordThreshold {
		switch missingClasses(password) {
		case 0, 1:
			return models.StrengthVeryStrong
		case 2:
			return models.StrengthStrong
		default:
			return models.StrengthMedium
		}
	}

	lower := strings.ToLower(password)
	for _, seq := range sequentialPatterns {
		if strings.Contains(lower, seq) {
			return models.StrengthWeak
		}
	}

	if ContainsDictionaryWord(password) {
		return models.StrengthWeak
	}

	if missingClasses(password) > 0 {
		return models.StrengthMedium
	}

	if len(password) >= 12 {
		return models.StrengthVeryStrong
	}
	return models.StrengthStrong
}

// missingClasses counts how many of the four character classes (upper case,
// lower case, digit, symbol) the password lacks.
func missingClasses(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(Symbols, r):
			hasSymbol = true
		}
	}

	missing := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if !ok {
			missing++
		}
	}
	return missing
}
