package cost

import (
	"math"

	"github.com/samber/lo"
)

// ToCost converts seconds (or a reluctance factor) to raptor cost, rounding
// half away from zero.
func ToCost(seconds float64) int {
	return int(math.Round(seconds * COST_PER_SECOND))
}

// ToSeconds converts raptor cost back to whole seconds.
func ToSeconds(cost int) int {
	return int(math.Round(float64(cost) / COST_PER_SECOND))
}

func ToCosts(values []float64) []int {
	return lo.Map(values, func(v float64, _ int) int { return ToCost(v) })
}
