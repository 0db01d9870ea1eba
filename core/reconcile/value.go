package reconcile

import "math"

const (
	// PairsPerHighTier is the number of craft pairs worth one high-tier unit.
	PairsPerHighTier = 9.0

	// midTierUnit and lowTierUnit are the decimal approximations of 1/3 and 1/9 of a
	// high-tier unit the game economy quotes. Keep them as is: the truncation near tier
	// boundaries depends on these exact values.
	midTierUnit = 0.33
	lowTierUnit = 0.11
)

// Convert turns a pair count into its currency breakdown.
func Convert(pairs int) Currency {
	value := float64(pairs) / PairsPerHighTier

	high, rest := math.Trunc(value), math.Mod(value, 1)
	mid, rest := rest/midTierUnit, math.Mod(rest, midTierUnit)
	low := rest / lowTierUnit

	return Currency{
		Pairs: pairs,
		Value: value,
		High:  int(high),
		Mid:   int(mid),
		Low:   int(low),
	}
}
