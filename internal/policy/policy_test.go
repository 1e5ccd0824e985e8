package policy

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/models"
)

func TestGenerate(t *testing.T) {
	t.Run("length and alphabet respected", func(t *testing.T) {
		got, err := Generate(20, Lowercase+Digits)
		require.NoError(t, err)
		assert.Len(t, got, 20)
		for _, r := range got {
			assert.True(t, strings.ContainsRune(Lowercase+Digits, r), "unexpected rune %q", r)
		}
	})

	t.Run("single-character alphabet", func(t *testing.T) {
		got, err := Generate(5, "x")
		require.NoError(t, err)
		assert.Equal(t, "xxxxx", got)
	})

	t.Run("duplicate alphabet characters collapse", func(t *testing.T) {
		got, err := Generate(10, "aaaaab")
		require.NoError(t, err)
		assert.Len(t, got, 10)
	})

	t.Run("error: zero length", func(t *testing.T) {
		_, err := Generate(0, Lowercase)
		require.Error(t, err)
	})

	t.Run("error: empty alphabet", func(t *testing.T) {
		_, err := Generate(10, "")
		assert.ErrorIs(t, err, ErrEmptyAlphabet)
	})

	t.Run("full alphabet produces all classes eventually", func(t *testing.T) {
		// 200 draws from 94 characters, the odds of a class never
		// appearing are negligible
		got, err := Generate(200, Uppercase+Lowercase+Digits+Symbols)
		require.NoError(t, err)

		var hasUpper, hasLower, hasDigit, hasSymbol bool
		for _, r := range got {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			default:
				hasSymbol = true
			}
		}
		assert.True(t, hasUpper && hasLower && hasDigit && hasSymbol)
	})
}

func TestEntropyBits(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		distinct int
		want     float64
	}{
		{name: "12 chars over lowercase", length: 12, distinct: 26, want: 56.41},
		{name: "16 chars over full 94-char set", length: 16, distinct: 94, want: 104.87},
		{name: "zero distinct", length: 10, distinct: 0, want: 0.0},
		{name: "zero length", length: 0, distinct: 26, want: 0.0},
		{name: "single repeated character", length: 8, distinct: 1, want: 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, EntropyBits(tc.length, tc.distinct), 0.01)
		})
	}
}

func TestEntropyLabelFor(t *testing.T) {
	tests := []struct {
		bits float64
		want models.EntropyLabel
	}{
		{bits: 0, want: models.EntropyPathetic},
		{bits: 29.99, want: models.EntropyPathetic},
		{bits: 30, want: models.EntropyWeak},
		{bits: 49.99, want: models.EntropyWeak},
		{bits: 50, want: models.EntropyGood},
		{bits: 69.99, want: models.EntropyGood},
		{bits: 70, want: models.EntropyStrong},
		{bits: 119.99, want: models.EntropyStrong},
		{bits: 120, want: models.EntropyExcellent},
		{bits: 300, want: models.EntropyExcellent},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, EntropyLabelFor(tc.bits), "bits=%v", tc.bits)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     models.Strength
	}{
		{name: "too short", password: "Ab1!xyz", want: models.StrengthWeak},
		{name: "exactly 7 chars", password: "Aa1!Aa1", want: models.StrengthWeak},
		{name: "sequential digits", password: "Xk1234!pQ", want: models.StrengthWeak},
		{name: "sequential letters", password: "xAbCd9!zW", want: models.StrengthWeak},
		{name: "qwerty run", password: "QwErTy9!x", want: models.StrengthWeak},
		{name: "dictionary word embedded", password: "mypassword9!", want: models.StrengthWeak},
		{name: "leet-speak dictionary word", password: "p4ssw0rd!X9", want: models.StrengthWeak},
		{name: "missing symbol", password: "Axbyczd19", want: models.StrengthMedium},
		{name: "missing upper case", password: "axbyczd1!9", want: models.StrengthMedium},
		{name: "all classes, under 12", password: "Axbycz1!", want: models.StrengthStrong},
		{name: "all classes, 12 or longer", password: "Axbycz1!Mkp2", want: models.StrengthVeryStrong},
		{name: "25+ chars, all classes", password: "Tr0ub4dor&X" + strings.Repeat("kQ7!", 4), want: models.StrengthVeryStrong},
		{name: "25+ chars, letters only", password: strings.Repeat("aQ", 13), want: models.StrengthStrong},
		{name: "25+ chars, single class", password: strings.Repeat("a", 30), want: models.StrengthMedium},
		{name: "25+ chars skip dictionary check", password: "password" + strings.Repeat("aQ1!", 5) + "x", want: models.StrengthVeryStrong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.password), "password=%q", tc.password)
		})
	}
}

func TestContainsDictionaryWord(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "exact match", password: "password", want: true},
		{name: "exact match uppercase", password: "PASSWORD", want: true},
		{name: "substring of longer password", password: "xxpasswordyy", want: true},
		{name: "leet substitution", password: "p4ssw0rd", want: true},
		{name: "leet with mixed case", password: "P45Sw0rD", want: true},
		{name: "substring of five-char entry", password: "xadminx", want: true},
		{name: "exact short entry", password: "admin", want: true},
		{name: "clean password", password: "korrekt-horse", want: false},
		{name: "long passwords exempt", password: "password" + strings.Repeat("x", 20), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsDictionaryWord(tc.password))
		})
	}
}
