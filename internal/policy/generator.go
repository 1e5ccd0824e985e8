// Package policy implements password generation, entropy computation and
// strength classification for the vault. It is pure: nothing here touches
// storage or the master key, so the graphical shell can call it before a
// credential ever reaches the vault.
package policy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Character groups offered by the generator. The shell composes an alphabet
// by concatenating the groups the user toggles on.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	// Symbols is the fixed punctuation set recognised by the strength
	// classifier; the generator and the classifier must agree on it.
	Symbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?`~\\|"
)

// ErrEmptyAlphabet is returned by [Generate] when no characters are
// available to draw from.
var ErrEmptyAlphabet = errors.New("empty generation alphabet")

// Generate produces a password of the given length by selecting characters
// independently and uniformly at random from alphabet, using the OS CSPRNG.
// Duplicate characters in alphabet are collapsed first so that repeating a
// character in the input cannot skew the distribution.
func Generate(length int, alphabet string) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be at least 1, got %d", length)
	}

	chars := []rune(dedupe(alphabet))
	if len(chars) == 0 {
		return "", ErrEmptyAlphabet
	}

	max := big.NewInt(int64(len(chars)))
	var b strings.Builder
	b.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		b.WriteRune(chars[idx.Int64()])
	}

	return b.String(), nil
}

// dedupe removes duplicate runes while preserving first-seen order.
func dedupe(alphabet string) string {
	seen := make(map[rune]struct{}, len(alphabet))
	var b strings.Builder
	for _, r := range alphabet {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		b.WriteRune(r)
	}
	return b.String()
}
