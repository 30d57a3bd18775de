package text

import (
	"math"

	"JaundiceAnalyzer/internal/domain"
)

// JaundiceRate returns the share of charged words in percent, rounded to 2 decimals.
// An empty article scores 0.
func JaundiceRate(words []string, charged domain.ChargedWords) float64 {
	if len(words) == 0 {
		return 0
	}

	var found int
	for _, w := range words {
		if charged.Contains(w) {
			found++
		}
	}

	score := float64(found) / float64(len(words)) * 100
	return math.Round(score*100) / 100
}
