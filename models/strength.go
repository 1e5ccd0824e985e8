package models

// Strength is the classification bucket produced by the password policy.
type Strength string

const (
	StrengthWeak       Strength = "Weak"
	StrengthMedium     Strength = "Medium"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very Strong"
)

// EntropyLabel is the coarse rating attached to a computed entropy value.
type EntropyLabel string

const (
	EntropyPathetic  EntropyLabel = "Pathetic"
	EntropyWeak      EntropyLabel = "Weak"
	EntropyGood      EntropyLabel = "Good"
	EntropyStrong    EntropyLabel = "Strong"
	EntropyExcellent EntropyLabel = "Excellent"
)
