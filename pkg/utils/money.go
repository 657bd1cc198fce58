package utils

import "math"

// ToKobo converts a naira amount to kobo, the integer minor unit all
// stored balances use.
func ToKobo(naira float64) int64 {
	return int64(math.Round(naira * 100))
}

// FromKobo converts kobo back to naira for presentation.
func FromKobo(kobo int64) float64 {
	return float64(kobo) / 100
}
