package policy

import (
	"math"

	"passvault/models"
)

// EntropyBits computes the theoretical entropy of a password of the given
// length drawn uniformly from distinct characters: length * log2(distinct),
// rounded to two decimals. A non-positive distinct count yields 0.0 instead
// of a log-domain error.
func EntropyBits(length int, distinct int) float64 {
	if distinct <= 0 || length <= 0 {
		return 0.0
	}

	bits := float64(length) * math.Log2(float64(distinct))
	return math.Round(bits*100) / 100
}

// EntropyLabelFor maps an entropy value in bits to its coarse rating bucket.
func EntropyLabelFor(bits float64) models.EntropyLabel {
	switch {
	case bits < 30:
		return models.EntropyPathetic
	case bits < 50:
		return models.EntropyWeak
	case bits < 70:
		return models.EntropyGood
	case bits < 120:
		return models.EntropyStrong
	default:
		return models.EntropyExcellent
	}
}
