package policy

import "strings"

// commonPasswords is the fixed list of frequently breached passwords the
// classifier screens against.
var commonPasswords = []string{
	"password", "123456", "qwerty", "admin",
	"123456789", "12345678", "1234567", "12345", "54321", "111111", "000000",
}

// leetReplacements maps the digit substitutions of common leet-speak back to
// the letters they stand in for. '1' is ambiguous between 'i' and 'l'; the
// normalisation maps it to 'i', matching how the common list is written.
var leetReplacements = []struct {
	letter string
	digit  string
}{
	{"a", "4"},
	{"e", "3"},
	{"i", "1"},
	{"o", "0"},
	{"s", "5"},
	{"t", "7"},
	{"l", "1"},
}

// minDictionaryWordLen keeps short list entries from triggering substring
// matches on unrelated passwords.
const minDictionaryWordLen = 4

// ContainsDictionaryWord reports whether the password matches a common
// breached password, either exactly, as a substring (words of 4+ characters
// only), or after normalising leet-speak digit substitutions. Passwords of
// [longPasswordThreshold] characters or more are exempt: at that length
// brute-force cost dominates and a embedded word no longer matters.
func ContainsDictionaryWord(password string) bool {
	return containsDictionaryWord(password, longPasswordThreshold)
}

func containsDictionaryWord(password string, ignoreLengthThreshold int) bool {
	if len(password) >= ignoreLengthThreshold {
		return false
	}

	lower := strings.ToLower(password)

	for _, word := range commonPasswords {
		if lower == word {
			return true
		}
	}

	for _, word := range commonPasswords {
		if len(word) >= minDictionaryWordLen && strings.Contains(lower, word) {
			return true
		}
	}

	transformed := lower
	for _, sub := range leetReplacements {
		transformed = strings.ReplaceAll(transformed, sub.digit, sub.letter)
	}

	for _, word := range commonPasswords {
		if len(word) >= minDictionaryWordLen && strings.Contains(transformed, word) {
			return true
		}
	}

	return false
}
