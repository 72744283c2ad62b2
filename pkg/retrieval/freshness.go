package retrieval

import "math"

// FreshnessHalfLifeDays is the age at which a passage's weight drops to
// 0.5. Seventy days tracks how fast venture documents go stale.
const FreshnessHalfLifeDays = 70.0

// FreshnessWeight decays exponentially with passage age:
// exp(-ln2/H * ageDays). Weight approaches 1 as age approaches 0 and
// halves every H days. Negative ages (clock skew) are clamped to 0.
func FreshnessWeight(ageDays, halfLifeDays float64) float64 {
	if ageDays < 0 {
		ageDays = 0
	}
	if halfLifeDays <= 0 {
		halfLifeDays = FreshnessHalfLifeDays
	}
	return math.Exp(-math.Ln2 / halfLifeDays * ageDays)
}

// Round6 rounds to 6 decimal places so scores compare deterministically
// across platforms.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
